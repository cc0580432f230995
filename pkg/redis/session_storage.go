package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// SessionStorage is a byte-oriented key/value store on top of Redis that
// satisfies session.Storage. Keys are namespaced with a prefix and never expire.
type SessionStorage struct {
	db     redis.UniversalClient
	prefix string
}

// NewSessionStorage wraps client. The prefix may be empty.
func NewSessionStorage(client redis.UniversalClient, prefix string) *SessionStorage {
	return &SessionStorage{db: client, prefix: prefix}
}

// Get returns nil and no error for missing keys.
func (s *SessionStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := s.db.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrStorageOperation, err)
	}
	return val, nil
}

// Set stores value under key without expiration.
func (s *SessionStorage) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.db.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return errors.Join(ErrStorageOperation, err)
	}
	return nil
}

// Delete removes key. Missing keys are not an error.
func (s *SessionStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.db.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStorageOperation, err)
	}
	return nil
}

// Ping reports whether the server behind the store answers. It backs the
// "redis" readiness check.
func (s *SessionStorage) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	return nil
}
