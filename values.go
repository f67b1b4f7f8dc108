package validation

import (
	"reflect"

	"github.com/spf13/cast"
)

// indirect follows pointers and interfaces until it reaches a concrete value.
// ok is false when the chain ends in nil.
func indirect(value any) (reflect.Value, bool) {
	if value == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, true
}

func isNilPointer(value any) bool {
	v := reflect.ValueOf(value)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// stringForm returns the textual representation matched by format checks.
func stringForm(value any) (string, bool) {
	v, ok := indirect(value)
	if !ok {
		return "", false
	}
	if v.Kind() == reflect.String {
		return v.String(), true
	}
	s, err := cast.ToStringE(v.Interface())
	if err != nil {
		return "", false
	}
	return s, true
}
