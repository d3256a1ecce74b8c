package dto

// CreateUserRequest represents a new staff user
type CreateUserRequest struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	Role        string  `json:"role" binding:"required,oneof=ADMIN FACULTY HR"`
	Gender      *string `json:"gender,omitempty" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	City        *string `json:"city,omitempty"`
	MobileNo    *string `json:"mobileNo,omitempty" binding:"omitempty,len=10,numeric"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
}

// UpdateUserRequest represents a staff user update. An empty password leaves
// the stored hash untouched.
type UpdateUserRequest struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password,omitempty"`
	Role        string  `json:"role" binding:"required,oneof=ADMIN FACULTY HR"`
	Gender      *string `json:"gender,omitempty" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	City        *string `json:"city,omitempty"`
	MobileNo    *string `json:"mobileNo,omitempty" binding:"omitempty,len=10,numeric"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Status      string  `json:"status" binding:"required,oneof=ACTIVE INACTIVE SUSPENDED"`
}
