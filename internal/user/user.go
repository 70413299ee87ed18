package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile is the public projection of a user shown next to their reviews.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (u User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username}
}
