package auth

import (
	"context"
	"time"

	"github.com/radhe721/Book-Review-api/internal/user"
)

//go:generate mockgen -source=ports.go -destination=mocks_test.go -package=auth

type Users interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

// RevocationList remembers revoked token ids until the tokens would have expired anyway.
type RevocationList interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
