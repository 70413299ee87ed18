package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Repository = (*MemoryRepo)(nil)

type MemoryRepo struct {
	mu      sync.RWMutex
	users   map[string]User
	byEmail map[string]string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:   make(map[string]User),
		byEmail: make(map[string]string),
	}
}

func (m *MemoryRepo) Create(_ context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[u.Email]; ok {
		return ErrAlreadyExists
	}
	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	m.users[u.ID] = *u
	m.byEmail[u.Email] = u.ID
	return nil
}

func (m *MemoryRepo) GetByEmail(_ context.Context, email string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return m.users[id], nil
}

func (m *MemoryRepo) GetByID(_ context.Context, id string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *MemoryRepo) ListProfiles(_ context.Context, ids []string) ([]Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []Profile{}
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u.Profile())
		}
	}
	return out, nil
}
