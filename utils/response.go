package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The error bodies below are a frozen external contract: guard failures use
// {"error":true,"message":...}, internal failures collapse to a generic 500,
// and business-rule conflicts are expressed as 200-status body flags by the
// individual handlers.

// AuthError writes a guard failure body and aborts the request.
func AuthError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, gin.H{"error": true, "message": message})
}

// Unauthorized rejects a request with a missing or invalid token.
func Unauthorized(ctx *gin.Context) {
	AuthError(ctx, http.StatusUnauthorized, "unauthorized access")
}

// Forbidden rejects an authenticated request with the wrong role.
func Forbidden(ctx *gin.Context) {
	AuthError(ctx, http.StatusForbidden, "forbidden request")
}

// Internal collapses any unexpected failure to the generic 500 body without
// leaking detail to the client.
func Internal(ctx *gin.Context, err error) {
	if err != nil && Sugar != nil {
		Sugar.Errorw("internal error", "path", ctx.FullPath(), "err", err)
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
