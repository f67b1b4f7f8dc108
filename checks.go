package validation

import (
	"reflect"
	"regexp"
)

// checkPresence fails for nil, nil pointers and empty strings only.
// Zero numbers, false and empty collections are present.
func checkPresence(value any) bool {
	v, ok := indirect(value)
	if !ok {
		return false
	}
	if v.Kind() == reflect.String {
		return v.Len() > 0
	}
	return true
}

func checkFormat(value any, re *regexp.Regexp) bool {
	s, ok := stringForm(value)
	if !ok {
		return false
	}
	return re.MatchString(s)
}

// checkType matches against the value's dynamic type; pointers are not followed.
func checkType(value any, descriptor TypeDescriptor) bool {
	if value == nil || isNilPointer(value) {
		return false
	}
	return descriptor.Matches(reflect.TypeOf(value))
}
