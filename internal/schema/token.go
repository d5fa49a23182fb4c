package schema

// LoginRequest carries the credentials for the login flow. Form tags keep
// compatibility with OAuth2-style form posts, JSON tags with API clients.
type LoginRequest struct {
	Email    string `json:"email" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenResponse is the successful login body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenTypeBearer is the only token type this service issues.
const TokenTypeBearer = "bearer"
