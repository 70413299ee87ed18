package auth

import (
	"context"
	"fmt"

	"github.com/radhe721/Book-Review-api/internal/httpx"
	"github.com/radhe721/Book-Review-api/internal/platform/crypto"
)

var _ httpx.Authenticator = (*TokenAuthenticator)(nil)

// TokenAuthenticator verifies signed access tokens and rejects revoked ones.
type TokenAuthenticator struct {
	secret      string
	revocations RevocationList
}

func NewTokenAuthenticator(secret string, revocations RevocationList) *TokenAuthenticator {
	return &TokenAuthenticator{secret: secret, revocations: revocations}
}

func (a *TokenAuthenticator) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := crypto.ParseToken(a.secret, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if claims.Sub == "" {
		return "", ErrUnauthorized
	}

	revoked, err := a.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return "", ErrTokenRevoked
	}
	return claims.Sub, nil
}
