package models

// LoginRequest is the dashboard login payload.
type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// Validate checks the login request fields.
func (r *LoginRequest) Validate() []FieldError {
	var errs []FieldError
	if r.User == "" {
		errs = append(errs, FieldError{Field: "user", Message: "is required", Code: "REQUIRED"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "is required", Code: "REQUIRED"})
	}
	return errs
}

// LoginResponse carries a freshly issued dashboard access token.
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   Timestamp `json:"expiresAt"`
}
