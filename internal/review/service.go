package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/radhe721/Book-Review-api/internal/platform/metrics"
)

// Service runs the review lifecycle: one review per user per book, owner-only changes,
// and a rating recompute on the parent book after every write. A failed recompute is
// returned to the caller but does not undo the review write.
type Service struct {
	repo       Repository
	books      Books
	aggregator *Aggregator
	metrics    *metrics.Metrics
}

func NewService(repo Repository, books Books, aggregator *Aggregator, m *metrics.Metrics) *Service {
	return &Service{repo: repo, books: books, aggregator: aggregator, metrics: m}
}

func (s *Service) Create(ctx context.Context, bookID, userID string, rating float64, comment *string) (Review, error) {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		return Review{}, fmt.Errorf("get book: %w", err)
	}

	_, err := s.repo.FindByBookAndUser(ctx, bookID, userID)
	if err == nil {
		return Review{}, ErrAlreadyReviewed
	}
	if !errors.Is(err, ErrNotFound) {
		return Review{}, fmt.Errorf("find existing review: %w", err)
	}

	r := &Review{
		BookID:  bookID,
		UserID:  userID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		if errors.Is(err, ErrAlreadyReviewed) {
			return Review{}, err
		}
		return Review{}, fmt.Errorf("create review: %w", err)
	}
	s.count("create")

	if _, err := s.aggregator.Recompute(ctx, bookID); err != nil {
		return Review{}, err
	}
	return *r, nil
}

// Update replaces rating and comment. A nil comment clears the stored one.
func (s *Service) Update(ctx context.Context, reviewID, callerID string, rating float64, comment *string) (Review, error) {
	r, err := s.owned(ctx, reviewID, callerID)
	if err != nil {
		return Review{}, err
	}

	r.Rating = rating
	r.Comment = comment
	if err := s.repo.Update(ctx, &r); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Review{}, err
		}
		return Review{}, fmt.Errorf("update review: %w", err)
	}
	s.count("update")

	if _, err := s.aggregator.Recompute(ctx, r.BookID); err != nil {
		return Review{}, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, reviewID, callerID string) error {
	r, err := s.owned(ctx, reviewID, callerID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, r.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete review: %w", err)
	}
	s.count("delete")

	_, err = s.aggregator.Recompute(ctx, r.BookID)
	return err
}

func (s *Service) owned(ctx context.Context, reviewID, callerID string) (Review, error) {
	r, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return Review{}, fmt.Errorf("get review: %w", err)
	}
	if r.UserID != callerID {
		return Review{}, ErrForbidden
	}
	return r, nil
}

func (s *Service) count(operation string) {
	if s.metrics != nil {
		s.metrics.ReviewMutationsTotal.WithLabelValues(operation).Inc()
	}
}
