package models

import (
	"time"

	"github.com/google/uuid"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID           uuid.UUID     `json:"id" db:"id"`
	FirstName    string        `json:"firstName" db:"first_name"`
	LastName     *string       `json:"lastName,omitempty" db:"last_name"`
	Email        string        `json:"email" db:"email"`
	Password     string        `json:"-" db:"password"` // Hashed password (excluded from JSON)
	Gender       Gender        `json:"gender" db:"gender"`
	DateOfBirth  string        `json:"dateOfBirth" db:"date_of_birth"` // dd/mm/yyyy
	Age          int           `json:"age" db:"age"`
	Location     *string       `json:"location,omitempty" db:"location"`
	MobileNo     string        `json:"mobileNo" db:"mobile_no"`
	Status       StudentStatus `json:"status" db:"status"`
	RegisteredAt time.Time     `json:"registeredAt" db:"registered_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	if s.LastName == nil || *s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + *s.LastName
}
