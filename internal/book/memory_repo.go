package book

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Repository = (*MemoryRepo)(nil)

// MemoryRepo keeps books in process memory. Books are listed newest first.
type MemoryRepo struct {
	mu    sync.RWMutex
	books map[string]*Book
	order []string
	now   func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		books: make(map[string]*Book),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryRepo) Create(_ context.Context, b *Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	b.ID = uuid.NewString()
	b.AverageRating = 0
	b.TotalReviews = 0
	b.CreatedAt = now
	b.UpdatedAt = now

	stored := *b
	m.books[b.ID] = &stored
	m.order = append(m.order, b.ID)
	return nil
}

func (m *MemoryRepo) GetByID(_ context.Context, id string) (Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return *b, nil
}

func (m *MemoryRepo) List(_ context.Context, q Query) ([]Book, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := []Book{}
	for i := len(m.order) - 1; i >= 0; i-- {
		b := m.books[m.order[i]]
		if q.Author != "" && b.Author != q.Author {
			continue
		}
		if q.Genre != "" && b.Genre != q.Genre {
			continue
		}
		matched = append(matched, *b)
	}
	return window(matched, q.Offset, q.Limit), len(matched), nil
}

func (m *MemoryRepo) Search(_ context.Context, text string, limit int) ([]Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(text)
	out := []Book{}
	for i := len(m.order) - 1; i >= 0 && len(out) < limit; i-- {
		b := m.books[m.order[i]]
		if strings.Contains(strings.ToLower(b.Title), needle) || strings.Contains(strings.ToLower(b.Author), needle) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *MemoryRepo) UpdateRatingSummary(_ context.Context, id string, average float64, total int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.books[id]
	if !ok {
		return ErrNotFound
	}
	b.AverageRating = average
	b.TotalReviews = total
	b.UpdatedAt = m.now()
	return nil
}

func window(items []Book, offset, limit int) []Book {
	if offset < 0 || offset >= len(items) {
		return []Book{}
	}
	end := len(items)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return items[offset:end]
}
