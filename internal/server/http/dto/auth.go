package dto

// RegisterRequest describes account creation payload.
type RegisterRequest struct {
	Login    string `json:"login" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest describes login/password payload.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the uniform error and acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
