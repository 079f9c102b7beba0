package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkravch/studyplan/internal/app/controllers"
	"github.com/dkravch/studyplan/internal/middleware"
)

// SetupRouter configures all application routes. Everything except the auth
// endpoints and the health check sits behind the JWT gate.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	subjectController *controllers.SubjectController,
	planController *controllers.AcademicPlanController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.POST("", studentController.CreateStudent)
			students.PATCH("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		subjects := authenticated.Group("/subjects")
		{
			subjects.GET("", subjectController.GetAllSubjects)
			subjects.GET("/:id", subjectController.GetSubjectByID)
			subjects.POST("", subjectController.CreateSubject)
			subjects.PATCH("/:id", subjectController.UpdateSubject)
			subjects.DELETE("/:id", subjectController.DeleteSubject)
		}

		plans := authenticated.Group("/academic-plans")
		{
			plans.GET("", planController.GetAllPlans)
			plans.GET("/:id", planController.GetPlanByID)
			plans.POST("", planController.CreatePlan)
			plans.PATCH("/:id", planController.UpdatePlan)
			plans.DELETE("/:id", planController.DeletePlan)
		}
	}

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
