package models

import (
	"time"

	"github.com/google/uuid"
)

// User defines the staff user model based on the 'users' table
type User struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	FirstName   string        `json:"firstName" db:"first_name"`
	LastName    string        `json:"lastName" db:"last_name"`
	Email       string        `json:"email" db:"email"`
	Password    string        `json:"-" db:"password"` // Hashed password (excluded from JSON)
	Role        UserRole      `json:"role" db:"role"`
	Gender      *Gender       `json:"gender,omitempty" db:"gender"`
	City        *string       `json:"city,omitempty" db:"city"`
	MobileNo    *string       `json:"mobileNo,omitempty" db:"mobile_no"`
	DateOfBirth *string       `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Status      AccountStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
