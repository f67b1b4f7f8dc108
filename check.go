package validation

import (
	"fmt"
	"regexp"
)

// Check is a single option passed to Builder.Declare: a kind plus the
// argument its check function receives.
type Check struct {
	Kind     Kind
	Argument any
}

// NewCheck builds a check with an arbitrary kind and argument. Kinds the
// evaluator does not know are accepted here and reported when evaluated.
func NewCheck(kind Kind, argument any) Check {
	return Check{Kind: kind, Argument: argument}
}

// Presence requires the attribute to be non-nil and not an empty string.
// Presence(false) declares nothing.
func Presence(required bool) Check {
	return Check{Kind: KindPresence, Argument: required}
}

// Format requires the attribute's string form to match pattern in its entirety.
// It panics if pattern does not compile.
func Format(pattern string) Check {
	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(fmt.Errorf("validation: invalid format pattern %q: %w", pattern, err))
	}
	return Check{Kind: KindFormat, Argument: re}
}

// FormatRegexp is Format for an already compiled expression. The expression
// is anchored on declaration so it must match the whole value.
func FormatRegexp(re *regexp.Regexp) Check {
	return Check{Kind: KindFormat, Argument: re}
}

// Type requires the attribute's dynamic type to satisfy descriptor.
func Type(descriptor TypeDescriptor) Check {
	return Check{Kind: KindType, Argument: descriptor}
}

// CompilePattern compiles pattern anchored to the start and end of input.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`\A(?:` + pattern + `)\z`)
}

// normalize anchors format patterns. Arguments it cannot convert are kept as
// they are and rejected by the evaluator.
func normalize(c Check) any {
	if c.Kind != KindFormat {
		return c.Argument
	}
	var source string
	switch a := c.Argument.(type) {
	case string:
		source = a
	case *regexp.Regexp:
		source = a.String()
	default:
		return c.Argument
	}
	re, err := CompilePattern(source)
	if err != nil {
		return c.Argument
	}
	return re
}

// truthy mirrors the declaration rule that only nil and false skip a check.
func truthy(argument any) bool {
	switch a := argument.(type) {
	case nil:
		return false
	case bool:
		return a
	case *regexp.Regexp:
		return a != nil
	case TypeDescriptor:
		return a != nil && !isNilPointer(a)
	}
	return true
}
