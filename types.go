package validation

import (
	"reflect"
	"strings"
)

// TypeDescriptor decides whether a value belongs to a type or one of its
// sub-kinds. Matches is never called with a nil value.
type TypeDescriptor interface {
	Matches(t reflect.Type) bool
	String() string
}

// Predeclared descriptors for the common scalar families. Named types such as
// `type Age int` match the family of their underlying kind.
var (
	Integer = KindOf("integer",
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
	)
	Float   = KindOf("float", reflect.Float32, reflect.Float64)
	Numeric = KindOf("numeric",
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
	)
	String = KindOf("string", reflect.String)
	Bool   = KindOf("bool", reflect.Bool)
)

// DefaultTypes maps the names used in rule files to the predeclared descriptors.
func DefaultTypes() map[string]TypeDescriptor {
	return map[string]TypeDescriptor{
		"integer": Integer,
		"float":   Float,
		"numeric": Numeric,
		"string":  String,
		"bool":    Bool,
	}
}

type goType struct {
	t reflect.Type
}

// TypeOf describes the Go type T. A value matches when its dynamic type is
// assignable to T, so any implementation matches an interface T.
func TypeOf[T any]() TypeDescriptor {
	return goType{t: reflect.TypeOf((*T)(nil)).Elem()}
}

func (g goType) Matches(t reflect.Type) bool {
	if t == g.t {
		return true
	}
	if g.t.Kind() == reflect.Interface {
		return t.Implements(g.t)
	}
	return t.AssignableTo(g.t)
}

func (g goType) String() string {
	return g.t.String()
}

type kindSet struct {
	name  string
	kinds []reflect.Kind
}

// KindOf describes every type whose reflect.Kind is one of kinds.
func KindOf(name string, kinds ...reflect.Kind) TypeDescriptor {
	if name == "" {
		parts := make([]string, len(kinds))
		for i, k := range kinds {
			parts[i] = k.String()
		}
		name = strings.Join(parts, "|")
	}
	return kindSet{name: name, kinds: kinds}
}

func (k kindSet) Matches(t reflect.Type) bool {
	for _, kind := range k.kinds {
		if t.Kind() == kind {
			return true
		}
	}
	return false
}

func (k kindSet) String() string {
	return k.name
}
