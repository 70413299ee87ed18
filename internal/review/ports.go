package review

import (
	"context"

	"github.com/radhe721/Book-Review-api/internal/book"
)

//go:generate mockgen -source=ports.go -destination=mocks_test.go -package=review

// Repository defines the contract for review data storage.
type Repository interface {
	// Create returns ErrAlreadyReviewed when the user already reviewed the book.
	Create(ctx context.Context, r *Review) error
	GetByID(ctx context.Context, id string) (Review, error)
	FindByBookAndUser(ctx context.Context, bookID, userID string) (Review, error)
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id string) error
	// ListByBook returns a newest-first page of a book's reviews and the book's live review count.
	ListByBook(ctx context.Context, bookID string, limit, offset int) ([]Review, int, error)
	ListRatings(ctx context.Context, bookID string) ([]float64, error)
}

// Books is the part of the book store reviews depend on.
type Books interface {
	GetByID(ctx context.Context, id string) (book.Book, error)
	UpdateRatingSummary(ctx context.Context, id string, average float64, total int) error
}
