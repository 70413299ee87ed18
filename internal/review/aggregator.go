package review

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/radhe721/Book-Review-api/internal/platform/metrics"
)

// Aggregator keeps a book's averageRating and totalReviews equal to the mean and count
// of its current reviews. Recomputations for the same book are serialised within the
// process; writers in other processes can still interleave.
type Aggregator struct {
	reviews Repository
	books   Books
	locks   *keyedMutex
	metrics *metrics.Metrics
}

// NewAggregator builds an Aggregator. m may be nil.
func NewAggregator(reviews Repository, books Books, m *metrics.Metrics) *Aggregator {
	return &Aggregator{
		reviews: reviews,
		books:   books,
		locks:   newKeyedMutex(),
		metrics: m,
	}
}

// Recompute reads every rating of the book and persists the resulting summary.
func (a *Aggregator) Recompute(ctx context.Context, bookID string) (Summary, error) {
	start := time.Now()
	unlock := a.locks.Lock(bookID)
	defer unlock()

	summary, err := a.recompute(ctx, bookID)
	a.observe(start, err)
	if err != nil {
		log.Printf("rating recompute failed: book_id=%s error=%v", bookID, err)
		return Summary{}, err
	}
	return summary, nil
}

func (a *Aggregator) recompute(ctx context.Context, bookID string) (Summary, error) {
	ratings, err := a.reviews.ListRatings(ctx, bookID)
	if err != nil {
		return Summary{}, fmt.Errorf("list ratings: %w", err)
	}
	summary := Summarize(ratings)
	if err := a.books.UpdateRatingSummary(ctx, bookID, summary.Average, summary.Total); err != nil {
		return Summary{}, fmt.Errorf("update rating summary: %w", err)
	}
	return summary, nil
}

func (a *Aggregator) observe(start time.Time, err error) {
	if a.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	a.metrics.AggregateRecomputeTotal.WithLabelValues(result).Inc()
	a.metrics.AggregateRecomputeDuration.Observe(time.Since(start).Seconds())
}

// keyedMutex hands out one mutex per key and forgets it once nobody holds or waits on it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyedEntry)}
}

func (k *keyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &keyedEntry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
