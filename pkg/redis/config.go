package redis

import "time"

// Config holds Redis connection settings. An empty ConnectionURL means Redis is
// not configured and callers fall back to in-process storage.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                                  // ConnectionURL in the format "redis://:password@localhost:6379/0".
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"credportal:"` // KeyPrefix is prepended to every key written by SessionStorage.
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`       // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`      // RetryInterval is the pause between attempts, e.g. "5s".
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`    // ConnectTimeout bounds the whole connection procedure, e.g. "30s".
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
