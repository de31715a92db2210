package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestRepo(t *testing.T) *ContactRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(dbPath, migrations))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewContactRepo(db)
}

func TestContactUpsertAndList(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTestRepo(t)

	ada := Contact{ID: uuid.NewString(), Name: "Ada Lovelace", Email: "ada@example.org", Tag: "work"}
	grace := Contact{ID: uuid.NewString(), Name: "Grace Hopper"}
	require.NoError(t, repo.Upsert(ctx, ada))
	require.NoError(t, repo.Upsert(ctx, grace))

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	require.Equal(t, "Ada Lovelace", contacts[0].Name)
	require.Equal(t, "Grace Hopper", contacts[1].Name)

	ada.Email = "ada@lovelace.dev"
	require.NoError(t, repo.Upsert(ctx, ada))
	got, err := repo.Get(ctx, ada.ID)
	require.NoError(t, err)
	require.Equal(t, "ada@lovelace.dev", got.Email)
}

func TestContactSetTagAndTags(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTestRepo(t)

	c := Contact{ID: uuid.NewString(), Name: "Ada"}
	require.NoError(t, repo.Upsert(ctx, c))
	require.NoError(t, repo.SetTag(ctx, c.ID, "friends"))

	tags, err := repo.Tags(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"friends"}, tags)
}

func TestContactDelete(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTestRepo(t)

	c := Contact{ID: uuid.NewString(), Name: "Ada"}
	require.NoError(t, repo.Upsert(ctx, c))
	require.NoError(t, repo.Delete(ctx, c.ID))

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, contacts)
}
