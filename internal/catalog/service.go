package catalog

import (
	"context"
	"fmt"

	"github.com/radhe721/Book-Review-api/internal/book"
	"github.com/radhe721/Book-Review-api/internal/httpx"
)

// Service answers the read side of the API: book listings, search and book detail.
type Service struct {
	books    Books
	reviews  Reviews
	profiles Profiles
}

func NewService(books Books, reviews Reviews, profiles Profiles) *Service {
	return &Service{books: books, reviews: reviews, profiles: profiles}
}

// List returns books newest first. A page past the end is empty, not an error.
func (s *Service) List(ctx context.Context, p ListParams) (BookPage, error) {
	pg := httpx.Pagination{Page: p.Page, Limit: p.Limit}
	books, total, err := s.books.List(ctx, book.Query{
		Author: p.Author,
		Genre:  p.Genre,
		Limit:  p.Limit,
		Offset: pg.Offset(),
	})
	if err != nil {
		return BookPage{}, fmt.Errorf("list books: %w", err)
	}
	if books == nil {
		books = []book.Book{}
	}
	return BookPage{
		Books:       books,
		CurrentPage: p.Page,
		TotalPages:  pg.TotalPages(total),
		TotalBooks:  total,
	}, nil
}

// Search matches text case-insensitively within title or author.
func (s *Service) Search(ctx context.Context, text string) ([]book.Book, error) {
	if text == "" {
		return nil, ErrEmptyQuery
	}
	books, err := s.books.Search(ctx, text, book.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	if books == nil {
		books = []book.Book{}
	}
	return books, nil
}

func (s *Service) GetWithReviews(ctx context.Context, bookID string, page, limit int) (BookDetail, error) {
	b, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return BookDetail{}, fmt.Errorf("get book: %w", err)
	}

	pg := httpx.Pagination{Page: page, Limit: limit}
	reviews, total, err := s.reviews.ListByBook(ctx, b.ID, limit, pg.Offset())
	if err != nil {
		return BookDetail{}, fmt.Errorf("list reviews: %w", err)
	}

	ids := make([]string, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.UserID)
	}
	profiles, err := s.profiles.Profiles(ctx, ids)
	if err != nil {
		return BookDetail{}, fmt.Errorf("resolve reviewers: %w", err)
	}

	views := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		v := ReviewView{
			ID:        r.ID,
			Book:      r.BookID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		}
		if p, ok := profiles[r.UserID]; ok {
			v.User = &p
		}
		views = append(views, v)
	}

	return BookDetail{
		Book:         b,
		Reviews:      views,
		CurrentPage:  page,
		TotalPages:   pg.TotalPages(total),
		TotalReviews: total,
	}, nil
}
