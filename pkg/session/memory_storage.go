package session

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStorage is an in-process Storage. Values never expire.
type MemoryStorage struct {
	c *gocache.Cache
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{c: gocache.New(gocache.NoExpiration, 0)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, nil
	}
	b, _ := v.([]byte)
	return append([]byte(nil), b...), nil
}

func (m *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	m.c.Set(key, append([]byte(nil), value...), gocache.NoExpiration)
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

// Len returns the number of stored keys.
func (m *MemoryStorage) Len() int {
	return m.c.ItemCount()
}
