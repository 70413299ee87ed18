package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "blacklist:"

// RedisRevocationList stores revoked token ids as keys that expire with the token.
type RedisRevocationList struct {
	client *redis.Client
}

func NewRedisRevocationList(client *redis.Client) *RedisRevocationList {
	return &RedisRevocationList{client: client}
}

func (l *RedisRevocationList) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := l.client.Set(ctx, revocationKeyPrefix+jti, "revoked", ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (l *RedisRevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := l.client.Exists(ctx, revocationKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

// MemoryRevocationList is the single-process fallback used when Redis is not configured.
type MemoryRevocationList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevocationList() *MemoryRevocationList {
	return &MemoryRevocationList{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (l *MemoryRevocationList) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for id, exp := range l.revoked {
		if !exp.After(now) {
			delete(l.revoked, id)
		}
	}
	if expiresAt.After(now) {
		l.revoked[jti] = expiresAt
	}
	return nil
}

func (l *MemoryRevocationList) IsRevoked(_ context.Context, jti string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	exp, ok := l.revoked[jti]
	return ok && exp.After(l.now()), nil
}
