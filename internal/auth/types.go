package auth

// TokenRequest is the body of POST /auth/token.
type TokenRequest struct {
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a freshly issued editor token.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds
	Success   bool   `json:"success"`
}
