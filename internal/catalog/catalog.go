package catalog

import (
	"errors"
	"time"

	"github.com/radhe721/Book-Review-api/internal/book"
	"github.com/radhe721/Book-Review-api/internal/user"
)

// ErrEmptyQuery is returned when a search has no query text.
var ErrEmptyQuery = errors.New("search query is required")

// ListParams selects a page of books. Author and Genre are optional exact-match filters.
type ListParams struct {
	Page   int
	Limit  int
	Author string
	Genre  string
}

type BookPage struct {
	Books       []book.Book `json:"books"`
	CurrentPage int         `json:"currentPage"`
	TotalPages  int         `json:"totalPages"`
	TotalBooks  int         `json:"totalBooks"`
}

// ReviewView is a review with its author resolved. User is null when the account no
// longer exists.
type ReviewView struct {
	ID        string        `json:"id"`
	Book      string        `json:"book"`
	User      *user.Profile `json:"user"`
	Rating    float64       `json:"rating"`
	Comment   *string       `json:"comment"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// BookDetail is a book with one page of its reviews. TotalReviews is counted from the
// reviews themselves, not read from the book's stored summary.
type BookDetail struct {
	Book         book.Book    `json:"book"`
	Reviews      []ReviewView `json:"reviews"`
	CurrentPage  int          `json:"currentPage"`
	TotalPages   int          `json:"totalPages"`
	TotalReviews int          `json:"totalReviews"`
}
