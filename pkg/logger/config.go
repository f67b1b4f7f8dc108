package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Config holds logger settings read from the environment with pkg/config.
// Env selects a preset (see WithEnvironment); Level and Format override it.
type Config struct {
	Env     string `env:"VALIDATION_ENV"`
	Service string `env:"VALIDATION_SERVICE"`
	Level   string `env:"VALIDATION_LOG_LEVEL"`  // debug, info, warn or error
	Format  string `env:"VALIDATION_LOG_FORMAT"` // json or text
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return l, nil
}

// FromConfig builds a logger writing to w from cfg.
// Empty fields keep the defaults of New.
func FromConfig(cfg Config, w io.Writer, opts ...Option) (*slog.Logger, error) {
	base := []Option{WithOutput(w)}
	if cfg.Env != "" {
		base = append(base, WithEnvironment(strings.ToLower(cfg.Env), cfg.Service))
	}
	if cfg.Level != "" {
		level, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		base = append(base, WithLevel(level))
	}
	if cfg.Format != "" {
		switch f := Format(strings.ToLower(cfg.Format)); f {
		case FormatJSON, FormatText:
			base = append(base, WithFormat(f))
		default:
			return nil, fmt.Errorf("invalid log format %q: must be %q or %q", cfg.Format, FormatJSON, FormatText)
		}
	}
	return New(append(base, opts...)...), nil
}
