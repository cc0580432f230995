package session

import "context"

// Storage is the key-value backend a Repository persists records in.
// Implementations must be safe for concurrent use.
type Storage interface {
	// Get returns the value stored under key, or nil and no error when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
