package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"sitter/internal/domain/entity"
	domainerrors "sitter/internal/domain/errors"
	"sitter/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh database file in a per-test temp directory and
// applies the schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, nil),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrate(db))

	return db
}

func TestUserRepository_CreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	first := &entity.User{Email: "a@example.com", PasswordDigest: "digest-a", Name: "Alice"}
	second := &entity.User{Email: "b@example.com", PasswordDigest: "digest-b", Name: "Bob", IsBabysitter: true}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "dup@example.com", PasswordDigest: "d1", Name: "First"}))

	err := repo.Create(ctx, &entity.User{Email: "dup@example.com", PasswordDigest: "d2", Name: "Second"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

func TestUserRepository_FindByCredentials(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	seeded := &entity.User{Email: "carol@example.com", PasswordDigest: "digest-c", Name: "Carol", IsBabysitter: true}
	require.NoError(t, repo.Create(ctx, seeded))

	found, err := repo.FindByCredentials(ctx, "carol@example.com", "digest-c")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)
	assert.Equal(t, "Carol", found.Name)
	assert.True(t, found.IsBabysitter)

	// Wrong digest and unknown email both miss the same way.
	_, err = repo.FindByCredentials(ctx, "carol@example.com", "wrong-digest")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByCredentials(ctx, "nobody@example.com", "digest-c")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestJobRepository_ListAllNewestFirst(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &entity.Job{Title: title, Description: "desc", PosterID: 1}))
	}

	jobs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, "third", jobs[0].Title)
	assert.Equal(t, "second", jobs[1].Title)
	assert.Equal(t, "first", jobs[2].Title)
	assert.Greater(t, jobs[0].ID, jobs[1].ID)
	assert.Greater(t, jobs[1].ID, jobs[2].ID)
}

func TestJobRepository_ListAllEmpty(t *testing.T) {
	repo := NewJobRepository(newTestDB(t))

	jobs, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestApplicationRepository_DuplicateApplicationsAllowed(t *testing.T) {
	repo := NewApplicationRepository(newTestDB(t))
	ctx := context.Background()

	first := &entity.Application{JobID: 1, ApplicantID: 2, Message: "pick me"}
	second := &entity.Application{JobID: 1, ApplicantID: 2, Message: "pick me again"}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
}
