package review

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Repository = (*MemoryRepo)(nil)

type memoryEntry struct {
	review Review
	seq    int64
}

// MemoryRepo keeps reviews in process memory and enforces one review per (book, user).
type MemoryRepo struct {
	mu      sync.RWMutex
	nextSeq int64
	reviews map[string]*memoryEntry
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{reviews: make(map[string]*memoryEntry)}
}

func copyReview(r Review) Review {
	if r.Comment != nil {
		c := *r.Comment
		r.Comment = &c
	}
	return r
}

func (m *MemoryRepo) Create(_ context.Context, r *Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.reviews {
		if e.review.BookID == r.BookID && e.review.UserID == r.UserID {
			return ErrAlreadyReviewed
		}
	}
	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.CreatedAt = now
	r.UpdatedAt = now

	m.nextSeq++
	m.reviews[r.ID] = &memoryEntry{review: copyReview(*r), seq: m.nextSeq}
	return nil
}

func (m *MemoryRepo) GetByID(_ context.Context, id string) (Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.reviews[id]
	if !ok {
		return Review{}, ErrNotFound
	}
	return copyReview(e.review), nil
}

func (m *MemoryRepo) FindByBookAndUser(_ context.Context, bookID, userID string) (Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.reviews {
		if e.review.BookID == bookID && e.review.UserID == userID {
			return copyReview(e.review), nil
		}
	}
	return Review{}, ErrNotFound
}

func (m *MemoryRepo) Update(_ context.Context, r *Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.reviews[r.ID]
	if !ok {
		return ErrNotFound
	}
	r.UpdatedAt = time.Now().UTC()
	e.review.Rating = r.Rating
	e.review.Comment = r.Comment
	e.review.UpdatedAt = r.UpdatedAt
	e.review = copyReview(e.review)
	return nil
}

func (m *MemoryRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reviews[id]; !ok {
		return ErrNotFound
	}
	delete(m.reviews, id)
	return nil
}

func (m *MemoryRepo) ListByBook(_ context.Context, bookID string, limit, offset int) ([]Review, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []*memoryEntry
	for _, e := range m.reviews {
		if e.review.BookID == bookID {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].seq > matched[j].seq })

	out := []Review{}
	if offset < 0 {
		return out, len(matched), nil
	}
	for i := offset; i < len(matched) && (limit <= 0 || len(out) < limit); i++ {
		out = append(out, copyReview(matched[i].review))
	}
	return out, len(matched), nil
}

func (m *MemoryRepo) ListRatings(_ context.Context, bookID string) ([]float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ratings []float64
	for _, e := range m.reviews {
		if e.review.BookID == bookID {
			ratings = append(ratings, e.review.Rating)
		}
	}
	return ratings, nil
}
