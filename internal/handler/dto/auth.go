// Package dto contains request and response types for the HTTP API.
package dto

import "github.com/translata/translata/internal/model"

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse confirms a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
}

// UserInfo is the public view of an account.
type UserInfo struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        UserInfo `json:"user"`
}

// ToLoginResponse converts a user and token to a login response.
func ToLoginResponse(user *model.User, token string) LoginResponse {
	return LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: UserInfo{
			Name:     user.Name,
			Username: user.Username,
		},
	}
}

// ErrorDetail describes a single API error.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for all API errors.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
