package validation

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/dmitrymomot/validation/pkg/logger"
)

// Evaluate runs the rules against v in declaration order and stops at the first
// one that fails. A failing rule is reported through the Outcome; the error is
// reserved for misconfigured rules (*UnknownCheckKindError, *InvalidArgumentError).
func (rs *RuleSet[T]) Evaluate(v T) (Outcome, error) {
	if rs == nil {
		return Valid, nil
	}
	for _, r := range rs.rules {
		ok, err := dispatch(r, r.Value(v))
		if err != nil {
			rs.logger.LogAttrs(context.Background(), slog.LevelError, "misconfigured validation rule",
				logger.Component("validation"),
				logger.Attribute(r.Attribute),
				logger.CheckKind(r.Kind.String()),
				logger.Error(err),
			)
			return Valid, err
		}
		if !ok {
			rs.logger.LogAttrs(context.Background(), slog.LevelDebug, "validation rule failed",
				logger.Component("validation"),
				logger.Attribute(r.Attribute),
				logger.CheckKind(r.Kind.String()),
			)
			return Outcome{Attribute: r.Attribute, Kind: r.Kind}, nil
		}
	}
	return Valid, nil
}

// Validate returns nil when v satisfies every rule, and a *ValidationError
// naming the first failing rule otherwise.
func (rs *RuleSet[T]) Validate(v T) error {
	outcome, err := rs.Evaluate(v)
	if err != nil {
		return err
	}
	return outcome.Err()
}

// IsValid reports whether Validate would return nil. Validation failures become
// false; configuration errors are returned unchanged.
func (rs *RuleSet[T]) IsValid(v T) (bool, error) {
	err := rs.Validate(v)
	switch {
	case err == nil:
		return true, nil
	case IsValidationError(err):
		return false, nil
	default:
		return false, err
	}
}

// MustBeValid is IsValid for rule sets known to be well formed.
// It panics on a configuration error.
func (rs *RuleSet[T]) MustBeValid(v T) bool {
	ok, err := rs.IsValid(v)
	if err != nil {
		panic(err)
	}
	return ok
}

func dispatch[T any](r Rule[T], value any) (bool, error) {
	switch r.Kind {
	case KindPresence:
		return checkPresence(value), nil
	case KindFormat:
		re, ok := r.Argument.(*regexp.Regexp)
		if !ok {
			return false, &InvalidArgumentError{Attribute: r.Attribute, Kind: r.Kind, Argument: r.Argument}
		}
		return checkFormat(value, re), nil
	case KindType:
		descriptor, ok := r.Argument.(TypeDescriptor)
		if !ok {
			return false, &InvalidArgumentError{Attribute: r.Attribute, Kind: r.Kind, Argument: r.Argument}
		}
		return checkType(value, descriptor), nil
	default:
		return false, &UnknownCheckKindError{Attribute: r.Attribute, Kind: r.Kind}
	}
}
