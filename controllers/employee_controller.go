package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bvtech/attendance-server/models"
	"github.com/bvtech/attendance-server/repository"
	"github.com/bvtech/attendance-server/utils"
)

// EmployeeController handles the admin-only employee CRUD surface.
type EmployeeController struct {
	employees repository.EmployeeRepository
}

// NewEmployeeController creates an EmployeeController.
func NewEmployeeController(employees repository.EmployeeRepository) *EmployeeController {
	return &EmployeeController{employees: employees}
}

type employeePayload struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// List returns every employee record.
func (e *EmployeeController) List(ctx *gin.Context) {
	emps, err := e.employees.ListAll(ctx.Request.Context())
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, emps)
}

// ListNames returns the id/name/email/employeeId projection.
func (e *EmployeeController) ListNames(ctx *gin.Context) {
	names, err := e.employees.ListNames(ctx.Request.Context())
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, names)
}

// Create provisions a new employee. Duplicate emails are a business-rule
// conflict reported as a 200-status body flag, not an HTTP error.
func (e *EmployeeController) Create(ctx *gin.Context) {
	var req employeePayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Internal(ctx, err)
		return
	}

	exists, err := e.employees.ExistsByEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	if exists {
		ctx.JSON(http.StatusOK, gin.H{
			"isEmailExist": true,
			"message":      "Employee with this email already exists.",
		})
		return
	}

	emp := models.Employee{
		Name:        req.Name,
		Designation: req.Designation,
		Email:       req.Email,
		Phone:       req.Phone,
	}
	result, err := e.employees.Create(ctx.Request.Context(), &emp)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Update overwrites name/designation/email/phone. The new email must not
// belong to a different existing record.
func (e *EmployeeController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}

	var req employeePayload
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Internal(ctx, err)
		return
	}

	existing, err := e.employees.FindByEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	if existing != nil && existing.ID != uint(id) {
		ctx.JSON(http.StatusOK, gin.H{
			"isEmailExist": true,
			"message":      "Employee with this email already exists.",
		})
		return
	}

	result, err := e.employees.Update(ctx.Request.Context(), uint(id), models.Employee{
		Name:        req.Name,
		Designation: req.Designation,
		Email:       req.Email,
		Phone:       req.Phone,
	})
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Delete removes an employee record by id.
func (e *EmployeeController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}

	result, err := e.employees.Delete(ctx.Request.Context(), uint(id))
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
