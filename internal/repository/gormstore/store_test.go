package gormstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/Gav1n0112/keya/internal/domain"
	"github.com/Gav1n0112/keya/internal/repository"
	"github.com/Gav1n0112/keya/internal/repository/gormstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()

	db, err := gormstore.Open(":memory:")
	require.NoError(t, err)

	return gormstore.NewRepositories(db)
}

func TestUserRepository_Singleton(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.User.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	user := &domain.User{Username: "admin", PasswordHash: "salt:hash", UpdatedAt: time.Now()}
	require.NoError(t, repos.User.Save(ctx, user))

	got, err := repos.User.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
	assert.Equal(t, "salt:hash", got.PasswordHash)

	// Save on the same record rotates in place, not a second row
	got.PasswordHash = "newsalt:newhash"
	require.NoError(t, repos.User.Save(ctx, got))

	got, err = repos.User.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "newsalt:newhash", got.PasswordHash)
}

func TestSoftwareRepository_CRUD(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	software := &domain.Software{
		ID:           uuid.New(),
		Name:         "tool",
		FileType:     domain.FileTypeMultiple,
		DownloadURLs: []string{"https://x/a.z01", "https://x/a.z02"},
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repos.Software.Create(ctx, software))

	got, err := repos.Software.GetByID(ctx, software.ID)
	require.NoError(t, err)
	assert.Equal(t, "tool", got.Name)
	assert.Equal(t, software.DownloadURLs, got.DownloadURLs)

	_, err = repos.Software.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	now := time.Now()
	got.Name = "renamed"
	got.UpdatedAt = &now
	require.NoError(t, repos.Software.Update(ctx, got))

	got, err = repos.Software.GetByID(ctx, software.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.NotNil(t, got.UpdatedAt)

	missing := &domain.Software{ID: uuid.New(), Name: "ghost", FileType: domain.FileTypeSingle, DownloadURLs: []string{"https://x/g.zip"}}
	assert.ErrorIs(t, repos.Software.Update(ctx, missing), domain.ErrNotFound)

	require.NoError(t, repos.Software.Delete(ctx, software.ID))
	assert.ErrorIs(t, repos.Software.Delete(ctx, software.ID), domain.ErrNotFound)
}

func TestKeyRepository_CRUD(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	softwareID := uuid.New()
	expiry := time.Now().Add(24 * time.Hour)
	keys := []*domain.Key{
		{ID: uuid.New(), Code: "AAAA-BBBB-CCC", SoftwareID: softwareID, CreatedAt: time.Now(), ValidUntil: &expiry},
		{ID: uuid.New(), Code: "DDDD-EEEE-FFF", SoftwareID: softwareID, CreatedAt: time.Now()},
	}
	require.NoError(t, repos.Key.CreateBatch(ctx, keys))

	items, err := repos.Key.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	got, err := repos.Key.GetByCode(ctx, "AAAA-BBBB-CCC")
	require.NoError(t, err)
	assert.Equal(t, keys[0].ID, got.ID)
	require.NotNil(t, got.ValidUntil)
	assert.WithinDuration(t, expiry, *got.ValidUntil, time.Second)

	_, err = repos.Key.GetByCode(ctx, "ZZZZ-ZZZZ-ZZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repos.Key.Delete(ctx, keys[1].ID))
	assert.ErrorIs(t, repos.Key.Delete(ctx, keys[1].ID), domain.ErrNotFound)

	require.NoError(t, repos.Key.DeleteBySoftwareID(ctx, softwareID))
	items, err = repos.Key.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
