package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/app/services"
	"github.com/trackpro/trackpro/internal/middleware"
)

// AdminController handles the admin-facing management endpoints
type AdminController struct {
	dashboardService   *services.DashboardService
	studentService     *services.StudentService
	userService        *services.UserService
	adminService       *services.AdminService
	courseService      *services.CourseService
	applicationService *services.ApplicationService
	complaintService   *services.ComplaintService
	logger             zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(dashboardService *services.DashboardService, studentService *services.StudentService,
	userService *services.UserService, adminService *services.AdminService, courseService *services.CourseService,
	applicationService *services.ApplicationService, complaintService *services.ComplaintService,
	logger zerolog.Logger) *AdminController {
	return &AdminController{
		dashboardService:   dashboardService,
		studentService:     studentService,
		userService:        userService,
		adminService:       adminService,
		courseService:      courseService,
		applicationService: applicationService,
		complaintService:   complaintService,
		logger:             logger,
	}
}

// GetDashboardStats returns the aggregated dashboard counters
func (c *AdminController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.dashboardService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", stats))
}

// GetRegistrations lists all registered students
func (c *AdminController) GetRegistrations(ctx *gin.Context) {
	students, err := c.studentService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", students))
}

// SearchRegistrations finds students by name or email
func (c *AdminController) SearchRegistrations(ctx *gin.Context) {
	students, err := c.studentService.Search(ctx.Request.Context(), ctx.Query("query"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", students))
}

// GetRecentRegistrations lists students registered in the last week
func (c *AdminController) GetRecentRegistrations(ctx *gin.Context) {
	students, err := c.studentService.GetRecent(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", students))
}

// GetUsers lists all staff users
func (c *AdminController) GetUsers(ctx *gin.Context) {
	users, err := c.userService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", users))
}

// SearchUsers finds staff users by name or email
func (c *AdminController) SearchUsers(ctx *gin.Context) {
	users, err := c.userService.Search(ctx.Request.Context(), ctx.Query("query"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", users))
}

// CreateUser adds a new staff user
func (c *AdminController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationFailure(ctx, err)
		return
	}

	user, err := c.userService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("User created successfully", user))
}

// UpdateUser modifies a staff user
func (c *AdminController) UpdateUser(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "userId")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationFailure(ctx, err)
		return
	}

	user, err := c.userService.Update(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("User updated successfully", user))
}

// DeleteUser removes a staff user
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "userId")
	if !ok {
		return
	}

	if err := c.userService.Delete(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("User deleted successfully", nil))
}

// GetAdmins lists all administrator accounts
func (c *AdminController) GetAdmins(ctx *gin.Context) {
	admins, err := c.adminService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", admins))
}

// SearchAdmins finds administrators by username, email or name
func (c *AdminController) SearchAdmins(ctx *gin.Context) {
	admins, err := c.adminService.Search(ctx.Request.Context(), ctx.Query("query"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", admins))
}

// CreateAdmin adds a new administrator account
func (c *AdminController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationFailure(ctx, err)
		return
	}

	admin, err := c.adminService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Admin created successfully", admin))
}

// UpdateAdmin modifies an administrator account
func (c *AdminController) UpdateAdmin(ctx *gin.Context) {
	adminID, ok := parseUUIDParam(ctx, "adminId")
	if !ok {
		return
	}

	var req dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationFailure(ctx, err)
		return
	}

	admin, err := c.adminService.Update(ctx.Request.Context(), adminID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Admin updated successfully", admin))
}

// DeleteAdmin removes an administrator account
func (c *AdminController) DeleteAdmin(ctx *gin.Context) {
	adminID, ok := parseUUIDParam(ctx, "adminId")
	if !ok {
		return
	}

	if err := c.adminService.Delete(ctx.Request.Context(), adminID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Admin deleted successfully", nil))
}

// GetCourses lists all courses
func (c *AdminController) GetCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", courses))
}

// SearchCourses finds courses by code, title or category
func (c *AdminController) SearchCourses(ctx *gin.Context) {
	courses, err := c.courseService.Search(ctx.Request.Context(), ctx.Query("query"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", courses))
}

// GetCourse returns one course
func (c *AdminController) GetCourse(ctx *gin.Context) {
	courseID, ok := parseUUIDParam(ctx, "courseId")
	if !ok {
		return
	}

	course, err := c.courseService.GetByID(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", course))
}

// CreateCourse adds a new course
func (c *AdminController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationFailure(ctx, err)
		return
	}

	course, err := c.courseService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Course created successfully", course))
}

// UpdateCourse modifies a course
func (c *AdminController) UpdateCourse(ctx *gin.Context) {
	courseID, ok := parseUUIDParam(ctx, "courseId")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationFailure(ctx, err)
		return
	}

	course, err := c.courseService.Update(ctx.Request.Context(), courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Course updated successfully", course))
}

// DeleteCourse removes a course
func (c *AdminController) DeleteCourse(ctx *gin.Context) {
	courseID, ok := parseUUIDParam(ctx, "courseId")
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx.Request.Context(), courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Course deleted successfully", nil))
}

// PublishCourse opens a course for applications
func (c *AdminController) PublishCourse(ctx *gin.Context) {
	courseID, ok := parseUUIDParam(ctx, "courseId")
	if !ok {
		return
	}

	course, err := c.courseService.Publish(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Course published successfully", course))
}

// UnpublishCourse takes a course back to draft
func (c *AdminController) UnpublishCourse(ctx *gin.Context) {
	courseID, ok := parseUUIDParam(ctx, "courseId")
	if !ok {
		return
	}

	course, err := c.courseService.Unpublish(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Course unpublished successfully", course))
}

// GetApplications lists all applications with student and course loaded
func (c *AdminController) GetApplications(ctx *gin.Context) {
	apps, err := c.applicationService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", apps))
}

// SearchApplications finds applications by student or course
func (c *AdminController) SearchApplications(ctx *gin.Context) {
	apps, err := c.applicationService.Search(ctx.Request.Context(), ctx.Query("query"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", apps))
}

// GetRecentApplications lists applications submitted in the last week
func (c *AdminController) GetRecentApplications(ctx *gin.Context) {
	apps, err := c.applicationService.GetRecent(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", apps))
}

// UpdateApplicationStatus moves an application through the workflow
func (c *AdminController) UpdateApplicationStatus(ctx *gin.Context) {
	applicationID, ok := parseUUIDParam(ctx, "applicationId")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationFailure(ctx, err)
		return
	}

	app, err := c.applicationService.UpdateStatus(ctx.Request.Context(), applicationID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &dto.ApplicationResponse{
		Success:     true,
		Message:     "Application status updated",
		Application: app,
	})
}

// GetComplaints lists all complaints
func (c *AdminController) GetComplaints(ctx *gin.Context) {
	complaints, err := c.complaintService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", complaints))
}

// UpdateComplaint moves a complaint to a new handling status
func (c *AdminController) UpdateComplaint(ctx *gin.Context) {
	complaintID, ok := parseUUIDParam(ctx, "complaintId")
	if !ok {
		return
	}

	var req dto.UpdateComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationFailure(ctx, err)
		return
	}

	complaint, err := c.complaintService.UpdateStatus(ctx.Request.Context(), complaintID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Complaint updated successfully", complaint))
}
