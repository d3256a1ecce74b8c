package dto

// CreateAdminRequest represents a new administrator account
type CreateAdminRequest struct {
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// UpdateAdminRequest represents an administrator update. An empty password
// leaves the stored hash untouched.
type UpdateAdminRequest struct {
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=ACTIVE INACTIVE SUSPENDED"`
}
