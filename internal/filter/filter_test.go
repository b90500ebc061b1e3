package filter

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lougail/github-users-api/cfg"
	"github.com/lougail/github-users-api/internal/apperror"
	"github.com/lougail/github-users-api/internal/model"
	"github.com/lougail/github-users-api/internal/snapshot"
	"github.com/lougail/github-users-api/pkg/log"
)

func newTestPipeline(t *testing.T) (*Pipeline, *snapshot.Store, *snapshot.Store) {
	t.Helper()

	dir := t.TempDir()
	input, err := snapshot.NewStore(filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	output, err := snapshot.NewStore(filepath.Join(dir, "filtered_users.json"))
	require.NoError(t, err)

	loader, _ := cfg.NewMockLoader()
	config, err := loader.Load()
	require.NoError(t, err)

	logger, _ := log.NewCslLogger()
	pipeline, err := NewPipeline(logger, config, input, output)
	require.NoError(t, err)
	return pipeline, input, output
}

func user(login string, id int64, date string, bio string) model.User {
	ts, _ := model.ParseTimestamp(date + "T12:00:00Z")
	return model.User{
		Login:     login,
		ID:        id,
		CreatedAt: ts,
		AvatarURL: "https://example.com/" + login + ".png",
		Bio:       bio,
	}
}

func TestDeduplicate(t *testing.T) {
	t.Run("last record wins at first-seen position", func(t *testing.T) {
		input := []model.User{
			user("first", 1, "2015-04-01", "first bio"),
			user("other", 2, "2015-04-01", "other bio"),
			user("second", 1, "2016-04-01", "second bio"),
		}

		unique := Deduplicate(input)
		require.Len(t, unique, 2)
		assert.Equal(t, "second", unique[0].Login)
		assert.Equal(t, "other", unique[1].Login)
	})

	t.Run("no duplicates keeps order", func(t *testing.T) {
		input := []model.User{
			user("a", 1, "2015-04-01", "x"),
			user("b", 2, "2015-04-01", "y"),
		}
		assert.Equal(t, input, Deduplicate(input))
	})
}

func TestProcess(t *testing.T) {
	ctx := context.Background()

	t.Run("stats and dedupe arithmetic", func(t *testing.T) {
		pipeline, input, output := newTestPipeline(t)
		require.NoError(t, input.Save([]model.User{
			user("a", 1, "2015-04-01", "bio a"),
			user("b", 2, "2015-04-01", "bio b"),
			user("a2", 1, "2015-04-01", "bio a2"),
		}))

		stats, err := pipeline.Process(ctx)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 1, stats.Duplicates)
		assert.Equal(t, 2, stats.Filtered)

		kept, err := output.Load()
		require.NoError(t, err)
		require.Len(t, kept, 2)
		assert.Equal(t, "a2", kept[0].Login)
	})

	t.Run("cutoff boundary dates", func(t *testing.T) {
		pipeline, input, output := newTestPipeline(t)
		require.NoError(t, input.Save([]model.User{
			user("too_old", 1, "1999-12-31", "bio"),
			user("on_cutoff", 2, "2000-01-01", "bio"),
			user("recent", 3, "2015-04-01", "bio"),
		}))

		stats, err := pipeline.Process(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Filtered)

		kept, err := output.Load()
		require.NoError(t, err)
		require.Len(t, kept, 2)
		assert.Equal(t, "on_cutoff", kept[0].Login)
		assert.Equal(t, "recent", kept[1].Login)
	})

	t.Run("records missing required fields removed", func(t *testing.T) {
		pipeline, input, output := newTestPipeline(t)

		noAvatar := user("no_avatar", 2, "2015-04-01", "bio")
		noAvatar.AvatarURL = ""

		require.NoError(t, input.Save([]model.User{
			user("no_bio", 1, "2015-04-01", ""),
			noAvatar,
			user("complete", 3, "2015-04-01", "bio"),
		}))

		stats, err := pipeline.Process(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Filtered)

		kept, err := output.Load()
		require.NoError(t, err)
		require.Len(t, kept, 1)
		assert.Equal(t, "complete", kept[0].Login)
	})

	t.Run("idempotent on own output", func(t *testing.T) {
		pipeline, input, output := newTestPipeline(t)
		require.NoError(t, input.Save([]model.User{
			user("a", 1, "2015-04-01", "bio a"),
			user("a2", 1, "2016-04-01", "bio a2"),
			user("old", 2, "1998-01-01", "bio"),
			user("b", 3, "2015-04-01", "bio b"),
		}))

		_, err := pipeline.Process(ctx)
		require.NoError(t, err)
		firstRun, err := output.Load()
		require.NoError(t, err)

		// Feed the output back through a second pipeline
		logger, _ := log.NewCslLogger()
		second, err := NewPipeline(logger, pipeline.Config, output, output)
		require.NoError(t, err)

		stats, err := second.Process(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Duplicates)
		assert.Equal(t, len(firstRun), stats.Filtered)

		secondRun, err := output.Load()
		require.NoError(t, err)
		assert.Equal(t, firstRun, secondRun)
	})

	t.Run("missing input snapshot is fatal", func(t *testing.T) {
		pipeline, _, _ := newTestPipeline(t)
		_, err := pipeline.Process(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrValidation))
	})
}

func TestProcessKeepsUTC(t *testing.T) {
	pipeline, input, output := newTestPipeline(t)
	require.NoError(t, input.Save([]model.User{user("a", 1, "2015-04-01", "bio")}))

	_, err := pipeline.Process(context.Background())
	require.NoError(t, err)

	kept, err := output.Load()
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, time.UTC, kept[0].CreatedAt.Location())
}
