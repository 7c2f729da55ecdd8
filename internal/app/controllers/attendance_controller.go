package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sqlday/sqlday/internal/app/models/dto"
	"github.com/sqlday/sqlday/internal/app/services"
	"github.com/sqlday/sqlday/internal/middleware"
)

// AttendanceController handles the faculty attendance dashboard endpoint
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// GetAttendance returns the attempted/unattempted partition for a day
// @Summary Get attendance for a day
// @Description Partitions the student roster by whether they answered the day's question, with optional exact-match class and department filters. Faculty only.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param date query string false "Quiz day (YYYY-MM-DD), defaults to today"
// @Param class query string false "Class label filter"
// @Param department query string false "Department filter"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceResponse} "Attendance partition"
// @Failure 400 {object} dto.ErrorResponse "Malformed date"
// @Failure 403 {object} dto.ErrorResponse "Not a faculty account"
// @Router /attendance [get]
func (c *AttendanceController) GetAttendance(ctx *gin.Context) {
	attendance, err := c.attendanceService.GetAttendance(
		ctx,
		ctx.Query("date"),
		ctx.Query("class"),
		ctx.Query("department"),
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(attendance))
}
