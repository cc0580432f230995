package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect establishes a connection to a Redis server using the provided configuration.
// It attempts to connect multiple times based on the RetryAttempts config value,
// with a delay between attempts specified by RetryInterval.
//
// Parameters:
//   - ctx: Context for controlling the connection timeout and cancellation
//   - cfg: Configuration for the Redis connection including connection URL, timeouts, and retry settings
//
// Returns:
//   - *redis.Client: A connected Redis client if successful
//   - error: ErrEmptyConnectionURL if no URL is configured,
//     ErrFailedToParseRedisConnString if the connection URL is invalid,
//     ErrRedisNotReady if all connection attempts fail
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, ErrEmptyConnectionURL
	}

	attempts := max(cfg.RetryAttempts, 1)

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	redisConnOpt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	var lastErr error
	for i := range attempts {
		redisClient := redis.NewClient(redisConnOpt)

		lastErr = redisClient.Ping(ctx).Err()
		if lastErr == nil {
			return redisClient, nil
		}
		_ = redisClient.Close()

		if i == attempts-1 {
			break
		}

		// Wait for the next attempt unless the context gives up first.
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrRedisNotReady, lastErr)
}
