package transport

// ErrorResponse is the uniform failure body: one human-readable string,
// surfaced directly by clients.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges an operation without returning an entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the successful login body.
type TokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}
