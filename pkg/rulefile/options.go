package rulefile

import (
	"log/slog"
	"maps"

	"github.com/dmitrymomot/validation"
)

// Option configures loading.
type Option func(*options)

type options struct {
	types     map[string]validation.TypeDescriptor
	logger    *slog.Logger
	hasLogger bool
}

func newOptions(opts []Option) *options {
	o := &options{
		types:  validation.DefaultTypes(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithTypes registers additional type names usable in `type:` checks.
// Names already registered are replaced.
func WithTypes(types map[string]validation.TypeDescriptor) Option {
	return func(o *options) {
		maps.Copy(o.types, types)
	}
}

// WithLogger sets the logger for the loader and the rule sets it builds.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
			o.hasLogger = true
		}
	}
}
