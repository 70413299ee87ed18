package user

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks_test.go -package=user

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	// ListProfiles returns the profiles of the given users. Unknown ids are skipped.
	ListProfiles(ctx context.Context, ids []string) ([]Profile, error)
}
