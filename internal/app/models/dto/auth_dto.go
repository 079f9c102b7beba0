package dto

// RegisterRequest represents registration data.
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"ivan"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// LoginRequest represents login data.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ivan"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// TokenResponse carries the issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}
