// Package filter implements the dedupe-then-filter batch step that turns
// the raw snapshot into the filtered one served by the API.
package filter

import (
	"context"

	"github.com/lougail/github-users-api/cfg"
	"github.com/lougail/github-users-api/internal/model"
	"github.com/lougail/github-users-api/internal/snapshot"
	"github.com/lougail/github-users-api/pkg/log"
)

// Stats reports the outcome of one pipeline run. Filtered is the number of
// surviving records, not the number removed.
type Stats struct {
	Total      int `json:"total"`
	Duplicates int `json:"duplicates"`
	Filtered   int `json:"filtered"`
}

type Pipeline struct {
	Logger log.Logger
	Config *cfg.Config
	Input  *snapshot.Store
	Output *snapshot.Store
}

func NewPipeline(logger log.Logger, config *cfg.Config, input *snapshot.Store, output *snapshot.Store) (*Pipeline, error) {
	return &Pipeline{
		Logger: logger,
		Config: config,
		Input:  input,
		Output: output,
	}, nil
}

// Process loads the raw snapshot, removes duplicates and disqualified
// records, and persists the result. Load and save failures are fatal for
// the run.
func (p *Pipeline) Process(ctx context.Context) (*Stats, error) {
	users, err := p.Input.Load()
	if err != nil {
		p.Logger.Error(ctx, "Failed to load raw snapshot: %v", err)
		return nil, err
	}

	stats := &Stats{Total: len(users)}
	p.Logger.Info(ctx, "Loaded %d users", stats.Total)

	unique := Deduplicate(users)
	stats.Duplicates = stats.Total - len(unique)

	kept := p.applyFilters(unique)
	stats.Filtered = len(kept)

	if err := p.Output.Save(kept); err != nil {
		p.Logger.Error(ctx, "Failed to save filtered snapshot: %v", err)
		return nil, err
	}

	p.Logger.Info(ctx, "Users loaded: %d", stats.Total)
	p.Logger.Info(ctx, "Duplicates removed: %d", stats.Duplicates)
	p.Logger.Info(ctx, "Users kept after filtering: %d", stats.Filtered)
	return stats, nil
}

// Deduplicate keeps exactly one record per id. A later record overwrites
// an earlier one with the same id while keeping the first-seen position,
// so the result is deterministic for a given input order.
func Deduplicate(users []model.User) []model.User {
	position := make(map[int64]int, len(users))
	unique := make([]model.User, 0, len(users))

	for _, user := range users {
		if at, seen := position[user.ID]; seen {
			unique[at] = user
			continue
		}
		position[user.ID] = len(unique)
		unique = append(unique, user)
	}
	return unique
}

// applyFilters keeps records whose required fields are present and whose
// creation date is on or after the configured cutoff.
func (p *Pipeline) applyFilters(users []model.User) []model.User {
	cutoff := p.Config.Filter.CutoffDate
	kept := make([]model.User, 0, len(users))

	for _, user := range users {
		if user.Bio == "" || user.AvatarURL == "" {
			continue
		}
		if user.CreatedAtDate() < cutoff {
			continue
		}
		kept = append(kept, user)
	}
	return kept
}
