package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/radhe721/Book-Review-api/internal/platform/crypto"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register hashes the password and stores a new user. Emails are unique case-insensitively.
func (s *Service) Register(ctx context.Context, email, username, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return User{}, ErrAlreadyExists
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("lookup user by email: %w", err)
	}

	hashed, err := crypto.HashPassword(password)
	if err != nil {
		return User{}, err
	}

	newUser := &User{
		Email:    email,
		Username: strings.TrimSpace(username),
		Password: hashed,
	}
	if err := s.repo.Create(ctx, newUser); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return User{}, err
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return *newUser, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// Profiles resolves user ids to profiles keyed by id.
func (s *Service) Profiles(ctx context.Context, ids []string) (map[string]Profile, error) {
	out := make(map[string]Profile, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	profiles, err := s.repo.ListProfiles(ctx, dedupe(ids))
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	for _, p := range profiles {
		out[p.ID] = p
	}
	return out, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
