package rulefile

import "errors"

var (
	// ErrInvalidRuleFile is returned when the document does not have the expected shape.
	ErrInvalidRuleFile = errors.New("invalid rule file")

	// ErrUnknownAttribute is returned when an attribute cannot be resolved to an accessor.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrUnknownType is returned when a type check names a descriptor that is not registered.
	ErrUnknownType = errors.New("unknown type")

	// ErrInvalidPattern is returned when a format check does not compile.
	ErrInvalidPattern = errors.New("invalid format pattern")
)
