package models

import (
	"time"

	"github.com/google/uuid"
)

// Complaint defines the complaint model based on the 'complaints' table
type Complaint struct {
	ID              uuid.UUID         `json:"id" db:"id"`
	Category        string            `json:"category" db:"category"`
	Priority        ComplaintPriority `json:"priority" db:"priority"`
	Description     string            `json:"description" db:"description"`
	Status          ComplaintStatus   `json:"status" db:"status"`
	StudentName     string            `json:"studentName" db:"student_name"`
	StudentEmail    string            `json:"studentEmail" db:"student_email"`
	ResolutionNotes *string           `json:"resolutionNotes,omitempty" db:"resolution_notes"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" db:"updated_at"`
	ResolvedAt      *time.Time        `json:"resolvedAt,omitempty" db:"resolved_at"`
}
