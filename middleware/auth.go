package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bvtech/attendance-server/models"
	"github.com/bvtech/attendance-server/repository"
	"github.com/bvtech/attendance-server/utils"
)

// ContextEmailKey is the key used to store the verified caller email in Gin context.
const ContextEmailKey = "email"

// AuthRequired ensures the request carries a valid bearer token. The verified
// identity (a bare email) is stored in the context for downstream handlers.
func AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(ctx)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.Unauthorized(ctx)
			return
		}

		email, err := utils.ParseIdentity(strings.TrimSpace(parts[1]))
		if err != nil {
			utils.Unauthorized(ctx)
			return
		}

		ctx.Set(ContextEmailKey, email)
		ctx.Next()
	}
}

// AdminRequired looks up the verified caller's role and rejects anyone who is
// not an admin. Must run after AuthRequired.
func AdminRequired(repo repository.EmployeeRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		email := CallerEmail(ctx)
		role, err := repo.RoleOf(ctx.Request.Context(), email)
		if err != nil {
			utils.Internal(ctx, err)
			ctx.Abort()
			return
		}
		if role != models.RoleAdmin {
			utils.Forbidden(ctx)
			return
		}
		ctx.Next()
	}
}

// CallerEmail returns the verified identity set by AuthRequired.
func CallerEmail(ctx *gin.Context) string {
	return ctx.GetString(ContextEmailKey)
}
