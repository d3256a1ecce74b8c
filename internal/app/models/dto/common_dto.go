package dto

// APIResponse is the uniform response envelope used by most endpoints
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse creates a success envelope with an optional payload
func NewSuccessResponse(message string, data interface{}) *APIResponse {
	return &APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewFailureResponse creates a failure envelope carrying a caller-facing message
func NewFailureResponse(message string) *APIResponse {
	return &APIResponse{
		Success: false,
		Message: message,
	}
}
