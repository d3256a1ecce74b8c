package dto

// CreateComplaintRequest represents a student-submitted complaint
type CreateComplaintRequest struct {
	Category     string `json:"category" binding:"required"`
	Priority     string `json:"priority" binding:"required,oneof=LOW MEDIUM HIGH URGENT"`
	Description  string `json:"description" binding:"required,min=10"`
	StudentName  string `json:"studentName" binding:"required"`
	StudentEmail string `json:"studentEmail" binding:"required,email"`
}

// UpdateComplaintRequest moves a complaint to a new handling status
type UpdateComplaintRequest struct {
	Status          string  `json:"status" binding:"required,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
	ResolutionNotes *string `json:"resolutionNotes,omitempty"`
}
