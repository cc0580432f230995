// Package redis provides helpers for connecting to a Redis server and using it
// as the backing store for portal sessions.
//
// The package wraps the go-redis client and adds:
//
//   - Connect, which retries the connection using the supplied configuration.
//   - SessionStorage, a prefixed byte key/value store that satisfies the
//     session.Storage interface, with Ping for readiness checks.
//
// Redis is optional. Config.Enabled reports whether REDIS_URL was set; when it
// is not, the service keeps sessions in process memory instead.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	if cfg.Enabled() {
//	    client, err := redis.Connect(ctx, cfg)
//	    if err != nil {
//	        return err
//	    }
//	    defer client.Close()
//
//	    store := redis.NewSessionStorage(client, cfg.KeyPrefix)
//	    repo, err := session.NewRepository(store)
//	    ...
//	}
//
// # Errors
//
// Sentinel errors such as ErrRedisNotReady are combined with the underlying
// go-redis error using errors.Join, so both can be matched with errors.Is.
package redis
