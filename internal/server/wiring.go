package server

import (
	"time"

	"github.com/radhe721/Book-Review-api/internal/auth"
	"github.com/radhe721/Book-Review-api/internal/book"
	"github.com/radhe721/Book-Review-api/internal/catalog"
	"github.com/radhe721/Book-Review-api/internal/platform/metrics"
	"github.com/radhe721/Book-Review-api/internal/review"
	"github.com/radhe721/Book-Review-api/internal/user"
)

// Repositories is the set of entity stores one process runs against.
type Repositories struct {
	Books   book.Repository
	Reviews review.Repository
	Users   user.Repository
}

// MemoryRepositories returns empty in-process stores.
func MemoryRepositories() Repositories {
	return Repositories{
		Books:   book.NewMemoryRepo(),
		Reviews: review.NewMemoryRepo(),
		Users:   user.NewMemoryRepo(),
	}
}

// NewHandlers builds the services over repos and returns their HTTP handlers together with
// the authenticator protected routes use.
func NewHandlers(repos Repositories, jwtSecret string, tokenTTL time.Duration, revocations auth.RevocationList, m *metrics.Metrics) (Handlers, *auth.TokenAuthenticator) {
	bookSvc := book.NewService(repos.Books)
	userSvc := user.NewService(repos.Users)
	aggregator := review.NewAggregator(repos.Reviews, repos.Books, m)
	reviewSvc := review.NewService(repos.Reviews, repos.Books, aggregator, m)
	catalogSvc := catalog.NewService(repos.Books, repos.Reviews, userSvc)
	authSvc := auth.NewService(jwtSecret, tokenTTL, userSvc, revocations)

	return Handlers{
		Books:   book.NewHTTPHandler(bookSvc),
		Catalog: catalog.NewHTTPHandler(catalogSvc),
		Reviews: review.NewHTTPHandler(reviewSvc),
		Users:   user.NewHTTPHandler(userSvc),
		Auth:    auth.NewHTTPHandler(authSvc),
	}, auth.NewTokenAuthenticator(jwtSecret, revocations)
}
