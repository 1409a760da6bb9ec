package tokens

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session_token (
  id         INTEGER PRIMARY KEY CHECK (id = 1),
  token      TEXT      NOT NULL,
  expires_at TIMESTAMP NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSaveAndLoad(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, r.Save(ctx, "tok-1", now.Add(24*time.Hour)))

	got, err := r.Load(ctx, now)
	require.NoError(t, err)
	require.Equal(t, "tok-1", got)
}

func TestSave_ReplacesExistingToken(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, r.Save(ctx, "old", now.Add(time.Hour)))
	require.NoError(t, r.Save(ctx, "new", now.Add(2*time.Hour)))

	got, err := r.Load(ctx, now)
	require.NoError(t, err)
	require.Equal(t, "new", got)
}

func TestLoad_NothingStored(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.Load(context.Background(), time.Now())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLoad_ExpiredTokenIsDropped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	now := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, r.Save(ctx, "stale", now.Add(-time.Minute)))

	got, err := r.Load(ctx, now)
	require.NoError(t, err)
	require.Empty(t, got)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session_token`).Scan(&n))
	require.Zero(t, n)
}

func TestDelete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, r.Save(ctx, "tok", now.Add(time.Hour)))
	require.NoError(t, r.Delete(ctx))
	require.NoError(t, r.Delete(ctx))

	got, err := r.Load(ctx, now)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestRepository_ClosedDB(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	require.ErrorContains(t, r.Save(context.Background(), "t", time.Now()), "failed to save token")
	_, err := r.Load(context.Background(), time.Now())
	require.ErrorContains(t, err, "failed to load token")
}
