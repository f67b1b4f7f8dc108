// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment,
//     falling back to ./.env when no path is given.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so each configuration is parsed once.
//   - MustLoad and MustLoadEnv panic instead of returning an error, for
//     configuration the process cannot start without.
//   - ResetCache and ForceReload drop cached values, mainly for tests.
//
// The cache is keyed by reflect.Type and guarded by a sync.RWMutex, with a
// sync.Once per type so concurrent first loads parse only once.
//
// # Usage
//
//	var cfg logger.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrInvalidConfigType,
// ErrConfigNotLoaded, ErrNilPointer and ErrLoadingEnvFile; compare them with
// errors.Is.
package config
