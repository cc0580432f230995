package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/credportal/pkg/redis"
)

func TestConnect_EmptyURL(t *testing.T) {
	t.Parallel()

	cfg := redis.Config{}
	assert.False(t, cfg.Enabled())

	client, err := redis.Connect(context.Background(), cfg)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
}

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL: "http://not-redis",
		RetryAttempts: 1,
	})
	assert.Nil(t, client)
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 2 * time.Second,
	})
	assert.Nil(t, client)
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
}

// Runs against a live server when TEST_REDIS_URL is set.
func TestSessionStorage_Live(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := redis.Connect(ctx, redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	prefix := "credportal-test:" + time.Now().Format("150405.000000") + ":"
	store := redis.NewSessionStorage(client, prefix)
	require.NoError(t, store.Ping(ctx))
	t.Cleanup(func() { _ = store.Delete(ctx, "portal_session") })

	v, err := store.Get(ctx, "portal_session")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, store.Set(ctx, "portal_session", []byte(`{"username":"alice"}`)))
	v, err = store.Get(ctx, "portal_session")
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice"}`, string(v))

	require.NoError(t, store.Delete(ctx, "portal_session"))
	require.NoError(t, store.Delete(ctx, "portal_session"))
	v, err = store.Get(ctx, "portal_session")
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.ErrorIs(t, store.Set(ctx, "", []byte("x")), redis.ErrEmptyKey)
}
