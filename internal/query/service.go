// Package query serves lookups over the filtered snapshot. Every call
// reloads the file from disk so results always reflect the latest pipeline
// run.
package query

import (
	"context"
	"strings"

	"github.com/lougail/github-users-api/internal/apperror"
	"github.com/lougail/github-users-api/internal/model"
	"github.com/lougail/github-users-api/internal/snapshot"
	"github.com/lougail/github-users-api/pkg/log"
)

type Service struct {
	Logger log.Logger
	Store  *snapshot.Store
}

func NewService(logger log.Logger, store *snapshot.Store) (*Service, error) {
	return &Service{
		Logger: logger,
		Store:  store,
	}, nil
}

// ListAll returns every record in the snapshot. A missing or corrupt
// snapshot is logged and yields an empty result, not an error.
func (s *Service) ListAll(ctx context.Context) []model.User {
	users, err := s.Store.Load()
	if err != nil {
		s.Logger.Error(ctx, "Failed to load snapshot: %v", err)
		return []model.User{}
	}
	return users
}

// Search matches the term case-insensitively against login and bio
// substrings.
func (s *Service) Search(ctx context.Context, term string) []model.User {
	users := s.ListAll(ctx)
	needle := strings.ToLower(term)

	matches := make([]model.User, 0)
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Login), needle) {
			matches = append(matches, user)
			continue
		}
		if user.Bio != "" && strings.Contains(strings.ToLower(user.Bio), needle) {
			matches = append(matches, user)
		}
	}
	return matches
}

// GetByLogin returns the record with the exact login or a not-found error.
func (s *Service) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	for _, user := range s.ListAll(ctx) {
		if user.Login == login {
			return &user, nil
		}
	}
	return nil, apperror.NotFound(login)
}
