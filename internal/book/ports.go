package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks_test.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id string) (Book, error)
	List(ctx context.Context, q Query) ([]Book, int, error)
	Search(ctx context.Context, text string, limit int) ([]Book, error)
	UpdateRatingSummary(ctx context.Context, id string, average float64, total int) error
}
