package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trackpro/trackpro/internal/app/controllers"
	"github.com/trackpro/trackpro/internal/metrics"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	adminController *controllers.AdminController,
	healthController *controllers.HealthController,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	api.POST("/login", authController.Login)
	api.POST("/logout", authController.Logout)

	auth := api.Group("/auth")
	{
		auth.GET("/status", authController.Status)
		auth.POST("/register", authController.Register)
	}

	// --- Student-facing routes ---
	student := api.Group("/student")
	{
		student.GET("/profile/:studentId", studentController.GetProfile)
		student.GET("/courses/available", studentController.GetAvailableCourses)
		student.GET("/courses/:courseId/details", studentController.GetCourseDetails)
		student.GET("/applications/:studentId", studentController.GetApplications)
		student.POST("/apply", studentController.Apply)
		student.GET("/progress/:studentId", studentController.GetProgress)
		student.GET("/can-apply/:studentId", studentController.CanApply)
	}

	api.POST("/complaints", studentController.CreateComplaint)

	// --- Admin management routes ---
	admin := api.Group("/admin")
	{
		admin.GET("/dashboard/stats", adminController.GetDashboardStats)

		admin.GET("/registrations", adminController.GetRegistrations)
		admin.GET("/registrations/search", adminController.SearchRegistrations)
		admin.GET("/registrations/recent", adminController.GetRecentRegistrations)

		admin.GET("/users", adminController.GetUsers)
		admin.GET("/users/search", adminController.SearchUsers)
		admin.POST("/users", adminController.CreateUser)
		admin.PUT("/users/:userId", adminController.UpdateUser)
		admin.DELETE("/users/:userId", adminController.DeleteUser)

		admin.GET("/admins", adminController.GetAdmins)
		admin.GET("/admins/search", adminController.SearchAdmins)
		admin.POST("/admins", adminController.CreateAdmin)
		admin.PUT("/admins/:adminId", adminController.UpdateAdmin)
		admin.DELETE("/admins/:adminId", adminController.DeleteAdmin)

		admin.GET("/courses", adminController.GetCourses)
		admin.GET("/courses/search", adminController.SearchCourses)
		admin.GET("/courses/:courseId", adminController.GetCourse)
		admin.POST("/courses", adminController.CreateCourse)
		admin.PUT("/courses/:courseId", adminController.UpdateCourse)
		admin.DELETE("/courses/:courseId", adminController.DeleteCourse)
		admin.PUT("/courses/:courseId/publish", adminController.PublishCourse)
		admin.PUT("/courses/:courseId/unpublish", adminController.UnpublishCourse)

		admin.GET("/applications", adminController.GetApplications)
		admin.GET("/applications/search", adminController.SearchApplications)
		admin.GET("/applications/recent", adminController.GetRecentApplications)
		admin.PUT("/applications/:applicationId/status", adminController.UpdateApplicationStatus)

		admin.GET("/complaints", adminController.GetComplaints)
		admin.PUT("/complaints/:complaintId", adminController.UpdateComplaint)
	}

	// --- Infra routes ---
	api.GET("/health", healthController.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
