package validation

import (
	"fmt"
	"log/slog"
	"slices"
)

// Accessor returns the current value of one attribute of an instance.
type Accessor[T any] func(T) any

// Rule is one declared check for one attribute of T.
type Rule[T any] struct {
	Attribute string
	Kind      Kind
	Argument  any

	get Accessor[T]
}

// Value reads the rule's attribute from v.
func (r Rule[T]) Value(v T) any {
	if r.get == nil {
		return nil
	}
	return r.get(v)
}

// Option configures a Builder.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report failing rules and misconfigured
// checks. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Builder accumulates rule declarations for T. The zero value is ready to use.
// It is not safe for concurrent use; build the RuleSet once during
// initialisation and share that instead.
type Builder[T any] struct {
	rules []Rule[T]
	opts  options
}

// NewBuilder returns an empty builder for T.
func NewBuilder[T any](opts ...Option) *Builder[T] {
	b := &Builder[T]{opts: options{logger: discardLogger()}}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

// Declare appends one rule per check whose argument is truthy, in the order
// given. A nil or false argument is skipped, so Presence(false) documents a
// non-requirement without registering anything. Unknown kinds are accepted
// and reported by the evaluator. Declare panics if get is nil.
func (b *Builder[T]) Declare(attribute string, get Accessor[T], checks ...Check) *Builder[T] {
	if get == nil {
		panic(fmt.Sprintf("validation: nil accessor for attribute %q", attribute))
	}
	for _, c := range checks {
		if !truthy(c.Argument) {
			continue
		}
		b.rules = append(b.rules, Rule[T]{
			Attribute: attribute,
			Kind:      c.Kind,
			Argument:  normalize(c),
			get:       get,
		})
	}
	return b
}

// Build freezes the declarations made so far. Later calls to Declare do not
// affect sets that were already built.
func (b *Builder[T]) Build() *RuleSet[T] {
	log := b.opts.logger
	if log == nil {
		log = discardLogger()
	}
	return &RuleSet[T]{
		rules:  slices.Clone(b.rules),
		logger: log,
	}
}

// RuleSet is the immutable, ordered list of rules declared for T. A nil
// *RuleSet is valid and holds no rules. It is safe for concurrent use.
type RuleSet[T any] struct {
	rules  []Rule[T]
	logger *slog.Logger
}

// Rules returns a copy of the rules in declaration order.
func (rs *RuleSet[T]) Rules() []Rule[T] {
	if rs == nil {
		return nil
	}
	return slices.Clone(rs.rules)
}

func (rs *RuleSet[T]) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Attributes lists every attribute with at least one rule, in the order each
// was first declared.
func (rs *RuleSet[T]) Attributes() []string {
	if rs == nil {
		return nil
	}
	seen := make(map[string]bool, len(rs.rules))
	var attrs []string
	for _, r := range rs.rules {
		if !seen[r.Attribute] {
			seen[r.Attribute] = true
			attrs = append(attrs, r.Attribute)
		}
	}
	return attrs
}
