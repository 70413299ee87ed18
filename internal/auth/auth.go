package auth

import (
	"errors"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"token"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}
