package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sqlday/sqlday/internal/app/controllers"
	"github.com/sqlday/sqlday/internal/app/models"
	"github.com/sqlday/sqlday/internal/app/models/dto"
	"github.com/sqlday/sqlday/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	questionController *controllers.QuestionController,
	resultsController *controllers.ResultsController,
	attendanceController *controllers.AttendanceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Question routes. Any signed-in user may view the active
		// question; only faculty may publish one.
		questions := authenticated.Group("/questions")
		{
			questions.GET("/today", questionController.GetTodayQuestion)

			questionsFacultyProtected := questions.Group("")
			questionsFacultyProtected.Use(authMiddleware.RoleRequired(string(models.RoleFaculty)))
			{
				questionsFacultyProtected.POST("", questionController.CreateQuestion)
				questionsFacultyProtected.GET("/days", questionController.GetQuestionDays)
			}
		}

		// Student-only routes: answering and viewing own results.
		studentProtected := authenticated.Group("")
		studentProtected.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			studentProtected.POST("/answers", questionController.SubmitAnswer)
			studentProtected.GET("/results", resultsController.GetResults)
		}

		// Faculty-only attendance dashboard.
		facultyProtected := authenticated.Group("")
		facultyProtected.Use(authMiddleware.RoleRequired(string(models.RoleFaculty)))
		{
			facultyProtected.GET("/attendance", attendanceController.GetAttendance)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
