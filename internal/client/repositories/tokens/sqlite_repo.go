package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ufood/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, token string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_token (id, token, expires_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET token = excluded.token, expires_at = excluded.expires_at
	`, token, expiresAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Load also removes an expired token so it is not offered again.
func (r *SQLiteRepository) Load(ctx context.Context, now time.Time) (string, error) {
	var (
		token     string
		expiresAt time.Time
	)
	err := r.db.QueryRowContext(ctx, `SELECT token, expires_at FROM session_token WHERE id = 1`).Scan(&token, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load token: %w", err)
	}

	if !now.Before(expiresAt) {
		if err := r.Delete(ctx); err != nil {
			return "", err
		}
		return "", nil
	}
	return token, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_token`); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
