package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bvtech/attendance-server/middleware"
	"github.com/bvtech/attendance-server/models"
	"github.com/bvtech/attendance-server/repository"
	"github.com/bvtech/attendance-server/utils"
)

// AuthController handles token issuance, the admin self-check and the
// provisioning-then-claim registration flow.
type AuthController struct {
	employees repository.EmployeeRepository
}

// NewAuthController creates an AuthController.
func NewAuthController(employees repository.EmployeeRepository) *AuthController {
	return &AuthController{employees: employees}
}

// IssueToken signs the supplied email and returns the bearer token.
func (a *AuthController) IssueToken(ctx *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Email == "" {
		utils.Internal(ctx, err)
		return
	}

	token, err := utils.IssueToken(req.Email)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

// AdminCheck reports whether the caller is an admin. A caller asking about an
// email other than their own gets {"admin":false} rather than an HTTP error.
func (a *AuthController) AdminCheck(ctx *gin.Context) {
	email := ctx.Param("email")
	if middleware.CallerEmail(ctx) != email {
		ctx.JSON(http.StatusOK, gin.H{"admin": false})
		return
	}

	role, err := a.employees.RoleOf(ctx.Request.Context(), email)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"admin": role == models.RoleAdmin})
}

// UserExists probes whether an email has been provisioned by an admin.
// Self-signup does not exist: a missing record means no access.
func (a *AuthController) UserExists(ctx *gin.Context) {
	email := ctx.Param("email")
	exists, err := a.employees.ExistsByEmail(ctx.Request.Context(), email)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	if !exists {
		ctx.JSON(http.StatusOK, gin.H{
			"isUserExist": false,
			"message":     "sorry, you have no access to create an account",
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"isUserExist": true,
		"message":     "please register",
	})
}

// ClaimAccount links login profile data to a pre-provisioned employee record
// and flips its activation flag. It never creates records.
func (a *AuthController) ClaimAccount(ctx *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
		Image string `json:"image"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Internal(ctx, err)
		return
	}

	exists, err := a.employees.ExistsByEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	if !exists {
		ctx.JSON(http.StatusOK, gin.H{
			"isUserExist": false,
			"message":     "sorry, you have no access to create an account",
		})
		return
	}

	result, err := a.employees.Claim(ctx.Request.Context(), req.Email, req.Phone, req.Image)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
