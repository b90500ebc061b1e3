// Package model defines the user record stored in the snapshot files and
// the validation rules applied when one is built from an API response.
package model

import (
	"fmt"
	"net/url"
	"time"

	"github.com/lougail/github-users-api/internal/apperror"
)

type User struct {
	Login     string    `json:"login"`
	ID        int64     `json:"id"`
	CreatedAt Timestamp `json:"created_at"`
	AvatarURL string    `json:"avatar_url"`
	Bio       string    `json:"bio"`
}

// NewUser builds a validated user record from raw API fields.
func NewUser(login string, id int64, createdAt string, avatarURL string, bio string) (*User, error) {
	if login == "" {
		return nil, apperror.ValidationFailed("login must not be empty")
	}
	if id <= 0 {
		return nil, apperror.ValidationFailed(fmt.Sprintf("id must be positive, got %d", id))
	}

	ts, err := ParseTimestamp(createdAt)
	if err != nil {
		return nil, apperror.ValidationFailed(fmt.Sprintf("invalid created_at %q: %v", createdAt, err))
	}
	if ts.Time.After(time.Now().UTC()) {
		return nil, apperror.ValidationFailed("creation date cannot be in the future")
	}

	parsed, err := url.Parse(avatarURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, apperror.ValidationFailed(fmt.Sprintf("avatar_url %q is not a well-formed URL", avatarURL))
	}

	return &User{
		Login:     login,
		ID:        id,
		CreatedAt: ts,
		AvatarURL: avatarURL,
		Bio:       bio,
	}, nil
}

// CreatedAtDate returns the date portion used by the filter cutoff
// comparison, always in UTC.
func (u *User) CreatedAtDate() string {
	return u.CreatedAt.Time.Format("2006-01-02")
}
