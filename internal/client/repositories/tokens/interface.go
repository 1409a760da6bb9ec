// Package tokens persists the session token together with its expiry.
package tokens

import (
	"context"
	"time"
)

// Repository holds at most one token. Load returns "" when no token is stored
// or the stored one has expired at now.
type Repository interface {
	Save(ctx context.Context, token string, expiresAt time.Time) error
	Load(ctx context.Context, now time.Time) (string, error)
	Delete(ctx context.Context) error
}
