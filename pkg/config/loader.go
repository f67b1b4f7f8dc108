package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores one parsed copy of each configuration type.
type cache struct {
	mu      sync.RWMutex
	entries map[reflect.Type]*entry
}

// entry holds the outcome of parsing one configuration type. Fields are
// written inside once and only read after it returns.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	globalCache = newCache()

	defaultEnvLoaded sync.Once
)

func newCache() *cache {
	return &cache{entries: make(map[reflect.Type]*entry)}
}

func (c *cache) entry(key reflect.Type) *entry {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return e
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok = c.entries[key]; !ok {
		e = new(entry)
		c.entries[key] = e
	}
	return e
}

// forget drops e so the next Load parses the environment again. A newer
// entry stored under key is left alone.
func (c *cache) forget(key reflect.Type, e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries[key] == e {
		delete(c.entries, key)
	}
}

func (c *cache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[reflect.Type]*entry)
}

// Load parses environment variables into v using `env` struct tags.
// The default .env file is read once on first use if present. Each
// configuration type is parsed once; later calls copy the cached value.
//
// Example:
//
//	type RulesConfig struct {
//		Path string `env:"VALIDATION_RULES_FILE,required"`
//	}
//
//	var cfg RulesConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// A missing .env file is not an error.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()
	if key.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s is not a struct", ErrInvalidConfigType, key)
	}

	e := globalCache.entry(key)
	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})
	if e.err != nil {
		// Every caller waiting on this entry sees the same error.
		globalCache.forget(key, e)
		return e.err
	}

	parsed, ok := e.value.(T)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = parsed
	return nil
}

// MustLoad is Load for configuration the process cannot run without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload discards the cached value for T and parses the environment again.
func ForceReload[T any](v *T) error {
	key := typeKey[T]()
	globalCache.forget(key, globalCache.entry(key))
	return Load(v)
}

// ResetCache discards every cached configuration.
func ResetCache() {
	globalCache.reset()
}

// LoadEnv reads the given .env files into the process environment, or the
// .env file in the working directory when none are given. Later files
// override earlier ones; variables already set in the process are replaced.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
