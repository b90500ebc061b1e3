package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lougail/github-users-api/internal/apperror"
	"github.com/lougail/github-users-api/internal/model"
)

func testUser(login string, id int64) model.User {
	return model.User{
		Login:     login,
		ID:        id,
		CreatedAt: model.Timestamp{Time: time.Date(2015, 4, 1, 10, 0, 0, 0, time.UTC)},
		AvatarURL: "https://example.com/" + login + ".png",
		Bio:       "bio of " + login,
	}
}

func TestStoreRoundtrip(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "data", "users.json"))
	require.NoError(t, err)

	users := []model.User{testUser("mojombo", 1), testUser("defunkt", 2)}
	require.NoError(t, store.Save(users))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, users, loaded)
}

func TestStoreSaveOverwrites(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, err)

	require.NoError(t, store.Save([]model.User{testUser("mojombo", 1)}))
	require.NoError(t, store.Save([]model.User{testUser("defunkt", 2)}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "defunkt", loaded[0].Login)
}

func TestStoreSaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	_, err = store.Load()
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Load()
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestNewStoreEmptyPath(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}
