package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches any *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownCheckKind is returned when a rule names a check the evaluator does not implement.
	ErrUnknownCheckKind = errors.New("unknown check kind")

	// ErrInvalidArgument is returned when a rule argument has the wrong type for its check kind.
	ErrInvalidArgument = errors.New("invalid check argument")
)

// ValidationError reports the first rule that rejected an instance.
type ValidationError struct {
	Attribute string
	Kind      Kind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s failed %s validation", e.Attribute, e.Kind)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UnknownCheckKindError is a configuration defect: the rule was declared with a
// kind that has no check function. It is never folded into a boolean result.
type UnknownCheckKindError struct {
	Attribute string
	Kind      Kind
}

func (e *UnknownCheckKindError) Error() string {
	return fmt.Sprintf("%s: unknown check kind %q for attribute %s", ErrUnknownCheckKind, e.Kind, e.Attribute)
}

func (e *UnknownCheckKindError) Unwrap() error {
	return ErrUnknownCheckKind
}

// InvalidArgumentError is a configuration defect: the argument stored with a
// rule cannot be used by the check function selected by its kind.
type InvalidArgumentError struct {
	Attribute string
	Kind      Kind
	Argument  any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s check on %s cannot use argument of type %T", ErrInvalidArgument, e.Kind, e.Attribute, e.Argument)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var verr *ValidationError
	return errors.As(err, &verr)
}

// AsValidationError extracts the *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
