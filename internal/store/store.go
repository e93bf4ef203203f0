package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Store is the durable key-value collaborator the app mirrors its state
// into. Values are JSON-serializable collections keyed by a fixed name; the
// whole value is replaced on every Set.
type Store interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Close() error
}
