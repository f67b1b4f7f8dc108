package validation

import (
	"reflect"
	"strings"
)

// AttributeResolver finds the accessor for an attribute name. It is how rules
// declared by name (for example from a rule file) are bound to a Go type.
type AttributeResolver[T any] interface {
	Resolve(attribute string) (Accessor[T], bool)
}

// Getters is an AttributeResolver backed by explicit accessor functions.
type Getters[T any] map[string]Accessor[T]

func (g Getters[T]) Resolve(attribute string) (Accessor[T], bool) {
	get, ok := g[attribute]
	return get, ok && get != nil
}

// Fields returns a resolver that looks attributes up as struct fields of T
// using the same matching rules as Field.
func Fields[T any]() AttributeResolver[T] {
	return fieldResolver[T]{}
}

type fieldResolver[T any] struct{}

func (fieldResolver[T]) Resolve(attribute string) (Accessor[T], bool) {
	return lookupField[T](attribute)
}

// Field returns an accessor for the exported struct field of T matching name.
// A field matches by Go name, by its json or yaml tag, or case-insensitively
// with underscores ignored, so "first_name" finds FirstName. T may be a struct
// or a pointer to one; a nil pointer yields a nil value.
// Field panics when no field matches.
func Field[T any](name string) Accessor[T] {
	get, ok := lookupField[T](name)
	if !ok {
		panic("validation: " + reflect.TypeOf((*T)(nil)).Elem().String() + " has no field matching " + name)
	}
	return get
}

func lookupField[T any](name string) (Accessor[T], bool) {
	st := reflect.TypeOf((*T)(nil)).Elem()
	for st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if name == "" || st.Kind() != reflect.Struct {
		return nil, false
	}

	index, ok := fieldIndex(st, name)
	if !ok {
		return nil, false
	}

	return func(v T) any {
		rv := reflect.ValueOf(&v).Elem()
		for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
			if rv.IsNil() {
				return nil
			}
			rv = rv.Elem()
		}
		fv, err := rv.FieldByIndexErr(index)
		if err != nil {
			return nil
		}
		return fv.Interface()
	}, true
}

func fieldIndex(st reflect.Type, name string) ([]int, bool) {
	var fuzzy []int
	for _, f := range reflect.VisibleFields(st) {
		if !f.IsExported() || f.Anonymous || !reachable(st, f.Index) {
			continue
		}
		if f.Name == name || tagName(f, "json") == name || tagName(f, "yaml") == name {
			return f.Index, true
		}
		if fuzzy == nil && strings.EqualFold(f.Name, strings.ReplaceAll(name, "_", "")) {
			fuzzy = f.Index
		}
	}
	return fuzzy, fuzzy != nil
}

// reachable reports whether every embedded struct on the path to a promoted
// field is exported, which Value.Interface requires.
func reachable(st reflect.Type, index []int) bool {
	for i := 1; i < len(index); i++ {
		if !st.FieldByIndex(index[:i]).IsExported() {
			return false
		}
	}
	return true
}

func tagName(f reflect.StructField, key string) string {
	tag := f.Tag.Get(key)
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}
