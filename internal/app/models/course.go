package models

import (
	"time"

	"github.com/google/uuid"
)

// Course defines the course model based on the 'courses' table
type Course struct {
	ID             uuid.UUID    `json:"id" db:"id"`
	Code           string       `json:"code" db:"code"`
	Title          string       `json:"title" db:"title"`
	DurationMonths int          `json:"durationMonths" db:"duration_months"`
	Category       string       `json:"category" db:"category"`
	Prerequisites  *string      `json:"prerequisites,omitempty" db:"prerequisites"`
	Description    *string      `json:"description,omitempty" db:"description"`
	Status         CourseStatus `json:"status" db:"status"`
	BatchesCount   int          `json:"batchesCount" db:"batches_count"`
	CreatedAt      time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time    `json:"updatedAt" db:"updated_at"`
}
