package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/radhe721/Book-Review-api/internal/platform/crypto"
	"github.com/radhe721/Book-Review-api/internal/user"
)

type Service struct {
	secret      string
	ttl         time.Duration
	users       Users
	revocations RevocationList
}

func NewService(secret string, ttl time.Duration, users Users, revocations RevocationList) *Service {
	return &Service{
		secret:      secret,
		ttl:         ttl,
		users:       users,
		revocations: revocations,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenResponse{}, ErrUnauthorized
		}
		return TokenResponse{}, fmt.Errorf("lookup user: %w", err)
	}
	if !crypto.VerifyPassword(u.Password, password) {
		return TokenResponse{}, ErrUnauthorized
	}

	token, _, err := crypto.GenerateToken(s.secret, u.ID, s.ttl)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.ttl.Seconds()),
	}, nil
}

// Logout revokes the token until its natural expiry.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := crypto.ParseToken(s.secret, token)
	if err != nil {
		return ErrUnauthorized
	}

	expiresAt := time.Now().Add(s.ttl)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.revocations.Revoke(ctx, claims.ID, expiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
