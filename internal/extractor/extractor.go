// Package extractor drives the GitHub API caller across pages of the user
// listing and assembles the raw snapshot records.
package extractor

import (
	"context"
	"time"

	"github.com/lougail/github-users-api/cfg"
	githubapi "github.com/lougail/github-users-api/internal/github_api"
	"github.com/lougail/github-users-api/internal/model"
	"github.com/lougail/github-users-api/pkg/log"
)

type Extractor struct {
	Logger log.Logger
	Config *cfg.Config
	Caller *githubapi.Caller
	sleep  func(time.Duration)
}

func NewExtractor(logger log.Logger, config *cfg.Config, caller *githubapi.Caller) (*Extractor, error) {
	return &Extractor{
		Logger: logger,
		Config: config,
		Caller: caller,
		sleep:  time.Sleep,
	}, nil
}

// Extract walks the user listing with a since-cursor until target records
// are accumulated or the source is exhausted. A page fetch failure aborts
// the run and returns what was collected so far together with the error. A
// single detail fetch failure only drops that user.
func (e *Extractor) Extract(ctx context.Context, target int) ([]model.User, error) {
	users := make([]model.User, 0, target)
	var since int64

	e.Logger.Info(ctx, "Starting extraction of %d users", target)

	for len(users) < target {
		batch, err := e.Caller.ListUsersSince(ctx, since, e.Config.GithubApi.BatchSize)
		if err != nil {
			e.Logger.Error(ctx, "Extraction aborted on page since=%d: %v", since, err)
			return users, err
		}

		// An empty page means the source is exhausted
		if len(batch) == 0 {
			break
		}

		for _, summary := range batch {
			if len(users) >= target {
				break
			}

			detail, err := e.Caller.GetUser(ctx, summary.Login)
			if err != nil {
				e.Logger.Warn(ctx, "Dropping user %s, detail fetch failed: %v", summary.Login, err)
				continue
			}

			user, err := model.NewUser(detail.Login, detail.ID, detail.CreatedAt, detail.AvatarURL, detail.Bio)
			if err != nil {
				e.Logger.Warn(ctx, "Dropping user %s, invalid record: %v", summary.Login, err)
				continue
			}
			users = append(users, *user)
		}

		// The cursor follows the last id of the raw page, not the last
		// accepted record
		since = batch[len(batch)-1].ID

		e.Logger.Info(ctx, "Progress: %d/%d users extracted", len(users), target)
		e.sleep(time.Duration(e.Config.GithubApi.PacingDelayMs) * time.Millisecond)
	}

	if len(users) > target {
		users = users[:target]
	}

	e.Logger.Info(ctx, "Extraction finished with %d users", len(users))
	return users, nil
}
