package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book represents a book entity. AverageRating and TotalReviews are derived from the
// book's reviews and are only written through UpdateRatingSummary.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         string    `json:"genre"`
	AverageRating float64   `json:"averageRating"`
	TotalReviews  int       `json:"totalReviews"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Query defines filters and pagination for listing books.
// Author and Genre are exact-match and combined with AND when both are set.
type Query struct {
	Author string
	Genre  string
	Limit  int
	Offset int
}

// SearchLimit caps the number of books a search returns.
const SearchLimit = 10
