package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sqlday/sqlday/internal/app/models/dto"
	"github.com/sqlday/sqlday/internal/app/services"
	"github.com/sqlday/sqlday/internal/middleware"
)

// QuestionController handles daily question endpoints
type QuestionController struct {
	questionService *services.QuestionService
}

// NewQuestionController creates a new QuestionController
func NewQuestionController(questionService *services.QuestionService) *QuestionController {
	return &QuestionController{
		questionService: questionService,
	}
}

// GetTodayQuestion returns today's question without the correct option
// @Summary Get today's question
// @Description Returns the active question for the current day; the correct option is never included
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.QuestionResponse} "Today's question"
// @Failure 404 {object} dto.ErrorResponse "No question for today"
// @Router /questions/today [get]
func (c *QuestionController) GetTodayQuestion(ctx *gin.Context) {
	question, err := c.questionService.GetTodayQuestion(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(question))
}

// CreateQuestion creates the question for a quiz day
// @Summary Create a question
// @Description Creates the daily question; only one question may exist per day. Faculty only.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.APIResponse{data=models.Question} "Question created"
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 403 {object} dto.ErrorResponse "Not a faculty account"
// @Failure 409 {object} dto.ErrorResponse "A question already exists for the day"
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid question payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	question, err := c.questionService.CreateQuestion(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(question))
}

// GetQuestionDays lists the days that already have a question
// @Summary List quiz days
// @Description Returns the days with a published question, newest first. Faculty only.
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of days to return"
// @Success 200 {object} dto.APIResponse{data=[]string} "Quiz days"
// @Failure 403 {object} dto.ErrorResponse "Not a faculty account"
// @Router /questions/days [get]
func (c *QuestionController) GetQuestionDays(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	days, err := c.questionService.ListQuestionDays(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(days))
}

// SubmitAnswer records the student's answer for today
// @Summary Submit today's answer
// @Description Records the chosen option for today's question; a second submission for the same day is rejected. Students only.
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitAnswerRequest true "Chosen option"
// @Success 201 {object} dto.APIResponse{data=models.AnswerRecord} "Answer recorded"
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 404 {object} dto.ErrorResponse "No question for today"
// @Failure 409 {object} dto.ErrorResponse "Already answered today"
// @Router /answers [post]
func (c *QuestionController) SubmitAnswer(ctx *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid answer payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.questionService.SubmitAnswer(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(record))
}
