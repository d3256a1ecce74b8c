package models

import (
	"time"

	"github.com/google/uuid"
)

// StudentApplication defines the course application model based on the
// 'student_applications' table. A student holds at most one application,
// enforced by a unique index on student_id.
type StudentApplication struct {
	ID                 uuid.UUID         `json:"id" db:"id"`
	StudentID          uuid.UUID         `json:"studentId" db:"student_id"`
	CourseID           uuid.UUID         `json:"courseId" db:"course_id"`
	Status             ApplicationStatus `json:"status" db:"status"`
	ApplicationNotes   *string           `json:"applicationNotes,omitempty" db:"application_notes"`
	ProgressPercentage int               `json:"progressPercentage" db:"progress_percentage"`
	AppliedAt          time.Time         `json:"appliedAt" db:"applied_at"`
	UpdatedAt          time.Time         `json:"updatedAt" db:"updated_at"`
	InterviewDate      *time.Time        `json:"interviewDate,omitempty" db:"interview_date"`
	AcceptedAt         *time.Time        `json:"acceptedAt,omitempty" db:"accepted_at"`
	CompletedAt        *time.Time        `json:"completedAt,omitempty" db:"completed_at"`
	Student            *Student          `json:"student,omitempty"` // Relation, no db tag
	Course             *Course           `json:"course,omitempty"`  // Relation, no db tag
}

var applicationProgress = map[ApplicationStatus]int{
	ApplicationApplied:     25,
	ApplicationUnderReview: 50,
	ApplicationInterview:   75,
	ApplicationAccepted:    90,
	ApplicationRejected:    0,
	ApplicationCompleted:   100,
}

// Progress returns the progress percentage attached to an application status.
func (s ApplicationStatus) Progress() int {
	return applicationProgress[s]
}

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	_, ok := applicationProgress[s]
	return ok
}
