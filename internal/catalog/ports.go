package catalog

import (
	"context"

	"github.com/radhe721/Book-Review-api/internal/book"
	"github.com/radhe721/Book-Review-api/internal/review"
	"github.com/radhe721/Book-Review-api/internal/user"
)

//go:generate mockgen -source=ports.go -destination=mocks_test.go -package=catalog

type Books interface {
	GetByID(ctx context.Context, id string) (book.Book, error)
	List(ctx context.Context, q book.Query) ([]book.Book, int, error)
	Search(ctx context.Context, text string, limit int) ([]book.Book, error)
}

type Reviews interface {
	ListByBook(ctx context.Context, bookID string, limit, offset int) ([]review.Review, int, error)
}

type Profiles interface {
	Profiles(ctx context.Context, ids []string) (map[string]user.Profile, error)
}
