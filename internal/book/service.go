package book

import (
	"context"
	"fmt"
	"strings"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new book with empty rating aggregates.
func (s *Service) Create(ctx context.Context, title, author, genre string) (Book, error) {
	b := &Book{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Genre:  strings.TrimSpace(genre),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return Book{}, fmt.Errorf("create book: %w", err)
	}
	return *b, nil
}

// GetByID returns a book by its identifier.
func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}
