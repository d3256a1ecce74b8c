package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/app/services"
	"github.com/trackpro/trackpro/internal/metrics"
	"github.com/trackpro/trackpro/internal/middleware"
)

// StudentController handles the student-facing endpoints
type StudentController struct {
	studentService     *services.StudentService
	courseService      *services.CourseService
	applicationService *services.ApplicationService
	complaintService   *services.ComplaintService
	logger             zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, courseService *services.CourseService,
	applicationService *services.ApplicationService, complaintService *services.ComplaintService,
	logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService:     studentService,
		courseService:      courseService,
		applicationService: applicationService,
		complaintService:   complaintService,
		logger:             logger,
	}
}

func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).WithField(name)))
		return uuid.Nil, false
	}
	return id, true
}

// GetProfile returns a student's profile
func (c *StudentController) GetProfile(ctx *gin.Context) {
	studentID, ok := parseUUIDParam(ctx, "studentId")
	if !ok {
		return
	}

	student, err := c.studentService.GetProfile(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", student))
}

// GetAvailableCourses lists the courses open for applications
func (c *StudentController) GetAvailableCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetPublished(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", courses))
}

// GetCourseDetails returns one course
func (c *StudentController) GetCourseDetails(ctx *gin.Context) {
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

// GetApplications returns a student's application
func (c *StudentController) GetApplications(ctx *gin.Context) {
	studentID, ok := parseUUIDParam(ctx, "studentId")
	if !ok {
		return
	}

	app, err := c.applicationService.GetStudentApplication(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", app))
}

// Apply submits a course application
func (c *StudentController) Apply(ctx *gin.Context) {
	var req dto.CourseApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid application request payload")
		middleware.HandleValidationFailure(ctx, err)
		return
	}

	app, err := c.applicationService.Apply(ctx.Request.Context(), req.StudentID, req.CourseID, req.Notes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	metrics.ApplicationsSubmitted.Inc()
	ctx.JSON(http.StatusCreated, &dto.ApplicationResponse{
		Success:     true,
		Message:     "Application submitted successfully",
		Application: app,
	})
}

// GetProgress returns a student's application journey
func (c *StudentController) GetProgress(ctx *gin.Context) {
	studentID, ok := parseUUIDParam(ctx, "studentId")
	if !ok {
		return
	}

	progress, err := c.applicationService.GetProgress(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", progress))
}

// CanApply reports whether a student may submit an application
func (c *StudentController) CanApply(ctx *gin.Context) {
	studentID, ok := parseUUIDParam(ctx, "studentId")
	if !ok {
		return
	}

	result, err := c.applicationService.CanApply(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", result))
}

// CreateComplaint files a new complaint
func (c *StudentController) CreateComplaint(ctx *gin.Context) {
	var req dto.CreateComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid complaint request payload")
		middleware.HandleValidationFailure(ctx, err)
		return
	}

	complaint, err := c.complaintService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Complaint submitted successfully", complaint))
}
