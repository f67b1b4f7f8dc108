package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation/pkg/config"
)

type CustomEnvConfig struct {
	RulesFile string   `env:"TEST_CUSTOM_RULES_FILE"`
	LogLevel  string   `env:"TEST_CUSTOM_LOG_LEVEL"`
	Strict    bool     `env:"TEST_CUSTOM_STRICT"`
	Types     []string `env:"TEST_CUSTOM_TYPES" envSeparator:","`
	Quoted    string   `env:"TEST_CUSTOM_QUOTED"`
	Priority  string   `env:"TEST_PRIORITY"`
}

type OverrideConfig struct {
	Unique string `env:"TEST_OVERRIDE_UNIQUE"`
}

var customKeys = []string{
	"TEST_CUSTOM_RULES_FILE",
	"TEST_CUSTOM_LOG_LEVEL",
	"TEST_CUSTOM_STRICT",
	"TEST_CUSTOM_TYPES",
	"TEST_CUSTOM_QUOTED",
	"TEST_PRIORITY",
	"TEST_OVERRIDE_UNIQUE",
}

// clearCustomEnv unsets the variables written by the .env fixtures before and
// after the test.
func clearCustomEnv(t *testing.T) {
	t.Helper()
	for _, k := range customKeys {
		require.NoError(t, os.Unsetenv(k))
	}
	config.ResetCache()
	t.Cleanup(func() {
		for _, k := range customKeys {
			_ = os.Unsetenv(k)
		}
		config.ResetCache()
	})
}

func TestLoadEnv_CustomPath(t *testing.T) {
	clearCustomEnv(t)

	require.NoError(t, config.LoadEnv("testdata/.env.custom"))

	var cfg CustomEnvConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "testdata/rules.yaml", cfg.RulesFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"integer", "string", "bool"}, cfg.Types)
	assert.Equal(t, "quoted value", cfg.Quoted)
	assert.Equal(t, "custom_file_value", cfg.Priority)
}

func TestLoadEnv_MultiplePaths(t *testing.T) {
	clearCustomEnv(t)

	require.NoError(t, config.LoadEnv("testdata/.env.custom", "testdata/.env.override"))

	var cfg CustomEnvConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "override_value", cfg.Priority)
	assert.Equal(t, "testdata/rules.yaml", cfg.RulesFile)

	var override OverrideConfig
	require.NoError(t, config.Load(&override))
	assert.Equal(t, "unique_to_override", override.Unique)
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/non_existent_file.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoadEnv(t *testing.T) {
	clearCustomEnv(t)

	assert.NotPanics(t, func() {
		config.MustLoadEnv("testdata/.env.custom")
	})
	assert.Panics(t, func() {
		config.MustLoadEnv("testdata/non_existent_file.env")
	})
}
