package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/radhe721/Book-Review-api/internal/auth"
	"github.com/radhe721/Book-Review-api/internal/book"
	"github.com/radhe721/Book-Review-api/internal/config"
	"github.com/radhe721/Book-Review-api/internal/platform/metrics"
	"github.com/radhe721/Book-Review-api/internal/review"
	"github.com/radhe721/Book-Review-api/internal/server"
	"github.com/radhe721/Book-Review-api/internal/store"
	"github.com/radhe721/Book-Review-api/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, cleanup, err := newServer(ctx, cfg)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}
	defer cleanup()

	if err := srv.Start(ctx); err != nil {
		log.Printf("server error: %v", err)
		return
	}
	log.Println("server stopped")
}

// newServer connects the configured stores and returns a server ready to Start. cleanup
// releases every connection newServer opened.
func newServer(ctx context.Context, cfg config.Config) (*server.Server, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	repos, ready, closeStore, err := openRepositories(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeStore)

	revocations, closeRevocations, err := openRevocationList(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	closers = append(closers, closeRevocations)

	m := metrics.New()
	handlers, authenticator := server.NewHandlers(repos, cfg.JWTSecret, cfg.TokenTTL, revocations, m)

	srv := server.New(server.Options{
		Config:        cfg,
		Handlers:      handlers,
		Authenticator: authenticator,
		Ready:         ready,
		Metrics:       m,
	})
	return srv, cleanup, nil
}

func openRepositories(ctx context.Context, cfg config.Config) (server.Repositories, server.ReadinessFunc, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Println("store: using in-memory repositories")
		return server.MemoryRepositories(), nil, func() {}, nil
	}

	st, err := store.New(ctx, cfg.DBDSN, store.Options{
		MaxConns:    cfg.DBMaxConns,
		MinConns:    cfg.DBMinConns,
		ConnTimeout: cfg.DBTimeout,
	})
	if err != nil {
		return server.Repositories{}, nil, nil, fmt.Errorf("open store: %w", err)
	}

	pool := st.Pool()
	repos := server.Repositories{
		Books:   book.NewPostgresRepo(pool, cfg.DBTimeout),
		Reviews: review.NewPostgresRepo(pool, cfg.DBTimeout),
		Users:   user.NewPostgresRepo(pool, cfg.DBTimeout),
	}
	return repos, st.HealthCheck, st.Close, nil
}

func openRevocationList(ctx context.Context, cfg config.Config) (auth.RevocationList, func(), error) {
	if cfg.RedisAddr == "" {
		log.Println("auth: REDIS_ADDR not set, token revocation is process-local")
		return auth.NewMemoryRevocationList(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis addr=%s: %w", cfg.RedisAddr, err)
	}
	log.Printf("auth: token revocation backed by redis addr=%s", cfg.RedisAddr)
	return auth.NewRedisRevocationList(client), func() { _ = client.Close() }, nil
}
