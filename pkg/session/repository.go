package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DefaultKey is the storage key used when no other key is configured.
const DefaultKey = "portal_session"

// Config holds session repository configuration.
type Config struct {
	Key string `env:"SESSION_KEY" envDefault:"portal_session"`
}

// Option configures a Repository.
type Option func(*Repository)

// WithKey stores the record under key instead of DefaultKey.
// Repositories with different keys hold independent sessions.
func WithKey(key string) Option {
	return func(r *Repository) {
		r.key = key
	}
}

// WithClock overrides the time source used for ConnectedAt.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

// Repository keeps at most one session record under a fixed key.
// There is no locking: concurrent writers race and the last write wins.
type Repository struct {
	storage Storage
	key     string
	now     func() time.Time
}

// NewRepository creates a repository on top of storage.
func NewRepository(storage Storage, opts ...Option) (*Repository, error) {
	r := &Repository{
		storage: storage,
		key:     DefaultKey,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.storage == nil {
		return nil, ErrNoStorage
	}
	if r.key == "" {
		return nil, ErrEmptyKey
	}
	return r, nil
}

// NewFromConfig creates a repository using the key from cfg.
func NewFromConfig(storage Storage, cfg Config, opts ...Option) (*Repository, error) {
	if cfg.Key != "" {
		opts = append([]Option{WithKey(cfg.Key)}, opts...)
	}
	return NewRepository(storage, opts...)
}

// Key returns the storage key of the repository.
func (r *Repository) Key() string {
	return r.key
}

// Save writes an active record for username and password, overwriting any
// existing record.
func (r *Repository) Save(ctx context.Context, username, password string) (*Record, error) {
	rec := NewRecord(username, password, r.now())

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("session: encode record: %w", err)
	}
	if err := r.storage.Set(ctx, r.key, data); err != nil {
		return nil, fmt.Errorf("session: save record: %w", err)
	}
	return rec, nil
}

// Get returns the stored record, or nil and no error when nothing is stored.
// A stored value that cannot be decoded yields an error wrapping
// ErrCorruptedRecord; the value is left in place.
func (r *Repository) Get(ctx context.Context) (*Record, error) {
	data, err := r.storage.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("session: load record: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var rec *Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Join(ErrCorruptedRecord, err)
	}
	return rec, nil
}

// Clear removes the stored record. Clearing an empty repository is a no-op.
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.storage.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("session: clear record: %w", err)
	}
	return nil
}
