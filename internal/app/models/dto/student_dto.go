package dto

import (
	"github.com/google/uuid"

	"github.com/trackpro/trackpro/internal/app/models"
)

// CourseApplicationRequest represents a student applying to a course
type CourseApplicationRequest struct {
	StudentID uuid.UUID `json:"studentId" binding:"required"`
	CourseID  uuid.UUID `json:"courseId" binding:"required"`
	Notes     *string   `json:"notes,omitempty"`
}

// ApplicationResponse represents the outcome of an application-workflow call.
// Business rejections (suspended student, duplicate application, unpublished
// course) come back with success=false and HTTP 200.
type ApplicationResponse struct {
	Success     bool                       `json:"success"`
	Message     string                     `json:"message"`
	Application *models.StudentApplication `json:"application,omitempty"`
}

// ProgressStep is one entry in the ordered application journey
type ProgressStep struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// ProgressResponse represents a student's position in the application journey
type ProgressResponse struct {
	StudentID   uuid.UUID      `json:"studentId"`
	Status      string         `json:"status"`
	Progress    int            `json:"progress"`
	CurrentStep string         `json:"currentStep"`
	Steps       []ProgressStep `json:"steps"`
}

// CanApplyResponse reports whether a student may submit an application
type CanApplyResponse struct {
	CanApply bool   `json:"canApply"`
	Reason   string `json:"reason,omitempty"`
}

// UpdateApplicationStatusRequest moves an application to a new workflow status
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=APPLIED UNDER_REVIEW INTERVIEW ACCEPTED REJECTED COMPLETED"`
}
