package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin defines the administrator model based on the 'admins' table
type Admin struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	Username  string        `json:"username" db:"username"`
	Email     string        `json:"email" db:"email"`
	Password  string        `json:"-" db:"password"` // Hashed password (excluded from JSON)
	FirstName string        `json:"firstName" db:"first_name"`
	LastName  string        `json:"lastName" db:"last_name"`
	Status    AccountStatus `json:"status" db:"status"`
	LastLogin *time.Time    `json:"lastLogin,omitempty" db:"last_login"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
}

// FullName returns the admin's display name.
func (a *Admin) FullName() string {
	return a.FirstName + " " + a.LastName
}
