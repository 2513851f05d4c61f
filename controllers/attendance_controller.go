package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bvtech/attendance-server/models"
	"github.com/bvtech/attendance-server/repository"
	"github.com/bvtech/attendance-server/utils"
)

// AttendanceController handles the employee check-in/out surface and the
// admin attendance review endpoints.
type AttendanceController struct {
	attendance repository.AttendanceRepository
	employees  repository.EmployeeRepository
}

// NewAttendanceController creates an AttendanceController.
func NewAttendanceController(attendance repository.AttendanceRepository, employees repository.EmployeeRepository) *AttendanceController {
	return &AttendanceController{attendance: attendance, employees: employees}
}

// ListForEmployee returns all sessions for an email, newest first, each row
// carrying the full employee record. The lookup runs once and is attached to
// every row.
func (a *AttendanceController) ListForEmployee(ctx *gin.Context) {
	email := ctx.Param("email")

	user, err := a.employees.FindByEmail(ctx.Request.Context(), email)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	rows, err := a.attendance.ListByEmail(ctx.Request.Context(), email)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}

	result := make([]models.AttendanceWithUser, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.AttendanceWithUser{Attendance: row, User: user})
	}
	ctx.JSON(http.StatusOK, result)
}

// StartSession records a check-in. The payload is stored as sent; the client
// supplies date and start time.
func (a *AttendanceController) StartSession(ctx *gin.Context) {
	var att models.Attendance
	if err := ctx.ShouldBindJSON(&att); err != nil {
		utils.Internal(ctx, err)
		return
	}

	result, err := a.attendance.Create(ctx.Request.Context(), &att)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CloseSession records a check-out: end time and total-work are set on the
// identified session and nothing else changes.
func (a *AttendanceController) CloseSession(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}

	var req struct {
		EndTime   string `json:"endTime"`
		TotalWork string `json:"totalWork"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Internal(ctx, err)
		return
	}

	result, err := a.attendance.CloseSession(ctx.Request.Context(), uint(id), req.EndTime, req.TotalWork)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// AdminList returns attendance rows filtered by the optional email and date
// range query parameters, newest first. The range applies only when both
// bounds parse; email narrows the result further whenever present.
func (a *AttendanceController) AdminList(ctx *gin.Context) {
	email := ctx.Query("email")

	var fromDate, toDate *int64
	if from, errFrom := strconv.ParseInt(ctx.Query("fromDate"), 10, 64); errFrom == nil {
		if to, errTo := strconv.ParseInt(ctx.Query("toDate"), 10, 64); errTo == nil {
			fromDate, toDate = &from, &to
		}
	}

	rows, err := a.attendance.ListFiltered(ctx.Request.Context(), email, fromDate, toDate)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// adminDetail merges one attendance row with the employee identified by the
// email query parameter (supplied separately, not derived from the row).
type adminDetail struct {
	models.Attendance
	EmployeeDetails *models.Employee `json:"employeeDetails"`
}

// AdminDetail returns the merged attendance + employee detail object.
func (a *AttendanceController) AdminDetail(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	email := ctx.Query("email")

	emp, err := a.employees.FindByEmail(ctx.Request.Context(), email)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	att, err := a.attendance.GetByID(ctx.Request.Context(), uint(id))
	if err != nil {
		utils.Internal(ctx, err)
		return
	}

	detail := adminDetail{EmployeeDetails: emp}
	if att != nil {
		detail.Attendance = *att
	}
	ctx.JSON(http.StatusOK, detail)
}
