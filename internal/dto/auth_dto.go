package dto

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MeResponse reports the identity derived from the caller's bearer token.
type MeResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
