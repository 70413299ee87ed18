package review

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("user has already reviewed this book")
	ErrForbidden       = errors.New("review belongs to another user")
)

// Review is one user's rating of one book. At most one exists per (BookID, UserID).
type Review struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book"`
	UserID    string    `json:"user"`
	Rating    float64   `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary is the mean and count of a book's ratings.
type Summary struct {
	Average float64
	Total   int
}

// Summarize computes the rating summary. No ratings yields a zero summary.
func Summarize(ratings []float64) Summary {
	if len(ratings) == 0 {
		return Summary{}
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return Summary{Average: sum / float64(len(ratings)), Total: len(ratings)}
}
