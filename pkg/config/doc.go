// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct tag parsing, and caches each parsed
// config type so repeated Load calls are cheap and consistent.
//
// # Usage
//
//	var app AppConfig
//	if err := config.Load(&app); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// Use LoadEnv to read extra .env files before the first Load, and
// ResetCache or ForceReloadConfig in tests after changing the environment.
//
// # Errors
//
//   - ErrParsingConfig: a variable is missing or cannot be converted
//   - ErrNilPointer: Load was given a nil pointer
//   - ErrConfigNotLoaded: the cache lost the value between parse and read
package config
