package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sqlday/sqlday/internal/app/models/dto"
	"github.com/sqlday/sqlday/internal/app/services"
	"github.com/sqlday/sqlday/internal/middleware"
)

// ResultsController handles the student results endpoint
type ResultsController struct {
	resultsService *services.ResultsService
}

// NewResultsController creates a new ResultsController
func NewResultsController(resultsService *services.ResultsService) *ResultsController {
	return &ResultsController{
		resultsService: resultsService,
	}
}

// GetResults returns the eligibility verdict for a quiz day
// @Summary Get daily results
// @Description Returns the question and the student's answer for a day. The date defaults to today; an explicit date must lie within the student's own answered history.
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param date query string false "Quiz day (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.ResultsResponse} "Question and answer"
// @Failure 400 {object} dto.ErrorResponse "Malformed date"
// @Failure 403 {object} dto.ErrorResponse "Date outside answered history"
// @Failure 404 {object} dto.ErrorResponse "No question or no answer for the day"
// @Router /results [get]
func (c *ResultsController) GetResults(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	results, err := c.resultsService.GetResults(ctx, userID, ctx.Query("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(results))
}
