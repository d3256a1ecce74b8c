package dto

// CreateCourseRequest represents a new course. Courses start in DRAFT.
type CreateCourseRequest struct {
	Code           string  `json:"code" binding:"required,min=2"`
	Title          string  `json:"title" binding:"required"`
	DurationMonths int     `json:"durationMonths" binding:"required,gte=1,lte=60"`
	Category       string  `json:"category" binding:"required"`
	Prerequisites  *string `json:"prerequisites,omitempty"`
	Description    *string `json:"description,omitempty"`
}

// UpdateCourseRequest represents a course update
type UpdateCourseRequest struct {
	Code           string  `json:"code" binding:"required,min=2"`
	Title          string  `json:"title" binding:"required"`
	DurationMonths int     `json:"durationMonths" binding:"required,gte=1,lte=60"`
	Category       string  `json:"category" binding:"required"`
	Prerequisites  *string `json:"prerequisites,omitempty"`
	Description    *string `json:"description,omitempty"`
	Status         string  `json:"status" binding:"required,oneof=DRAFT PUBLISHED ARCHIVED SUSPENDED"`
	BatchesCount   *int    `json:"batchesCount,omitempty" binding:"omitempty,gte=0"`
}
