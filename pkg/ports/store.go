package ports

import (
	"context"
)

// Store is a string key-value store, the Go counterpart of a browser storage area.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value stored under key.
	// Returns domain.ErrKeyNotFound if the key holds no value.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Keys lists the stored keys in no particular order.
	Keys(ctx context.Context) ([]string, error)
}
