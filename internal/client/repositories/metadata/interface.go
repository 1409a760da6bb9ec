// Package metadata is the local key-value store of the client. It keeps the
// last known user id, the cached profile JSON and the selected favorite list.
package metadata

import (
	"context"
)

// Repository reads and writes opaque values by key. Get returns (nil, nil)
// for a missing key. Clear drops every key; all of them are user-scoped.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
