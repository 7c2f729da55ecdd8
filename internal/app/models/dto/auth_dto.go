package dto

// RegisterRequest represents a sign-up request. The account role is
// derived from the email's domain suffix, never chosen by the caller.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ana.li@btech.example.edu"`
	Password string `json:"password" binding:"required,min=8" example:"s3cretpwd"`
	Name     string `json:"name" example:"Ana Li"` // Used for faculty accounts only; student names come from the roster profile
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents an issued token pair
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn" example:"3600"`
	TokenType    string `json:"tokenType" example:"Bearer"`
}
