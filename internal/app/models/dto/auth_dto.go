package dto

import "github.com/google/uuid"

// LoginRequest represents login credentials. The email field also accepts an
// admin username for the administrator store.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo represents the authenticated principal returned on login
type UserInfo struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

// LoginResponse represents the outcome of a login attempt. Authentication
// failures come back with success=false and HTTP 200, never an error status.
type LoginResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	UserType string    `json:"userType,omitempty"`
	Token    string    `json:"token,omitempty"`
	User     *UserInfo `json:"user,omitempty"`
}

// AuthStatusResponse reports whether the authentication service is reachable
type AuthStatusResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	TokenAuth bool   `json:"tokenAuth"`
}

// RegistrationRequest represents a student registration payload
type RegistrationRequest struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    *string `json:"lastName,omitempty"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	Gender      string  `json:"gender" binding:"required,oneof=MALE FEMALE OTHER"`
	DateOfBirth string  `json:"dateOfBirth" binding:"required"`
	Age         int     `json:"age" binding:"required,gte=20,lte=25"`
	Location    *string `json:"location,omitempty"`
	MobileNo    string  `json:"mobileNo" binding:"required,len=10,numeric"`
}

// RegistrationResponse represents the outcome of a registration attempt
type RegistrationResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	StudentID *uuid.UUID `json:"studentId,omitempty"`
}
