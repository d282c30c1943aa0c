package dto

// UpdateCredentialsRequest rotates the stored admin login. Empty fields are left unchanged.
type UpdateCredentialsRequest struct {
	NewUsername string `json:"newUsername"`
	NewPassword string `json:"newPassword"`
}

// MessageResponse is the body of endpoints that only acknowledge success.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
