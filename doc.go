// Package validation attaches declarative, per-attribute validation rules to
// any Go type and evaluates them against instances of that type.
//
// A type declares its rules once, usually in a package-level variable, by
// pairing each attribute name with an accessor and one or more checks. The
// resulting RuleSet is immutable and can be shared by any number of
// goroutines.
//
// # Checks
//
// Three check kinds are built in:
//
//   - presence – fails for nil, nil pointers and empty strings. Zero numbers,
//     false and empty collections are present.
//   - format   – the value's string form must match a regular expression in
//     its entirety. Patterns are anchored automatically.
//   - type     – the value's dynamic type must satisfy a TypeDescriptor.
//     TypeOf[T] matches T and anything assignable to it, KindOf matches by
//     reflect.Kind so named types match their family (Integer, String, ...).
//
// Declaring a check with a false or nil argument registers nothing, which lets
// a type document a non-requirement such as Presence(false).
//
// # Usage
//
//	type Person struct {
//	    FirstName string
//	    Number    string
//	    Age       any
//	}
//
//	var personRules = validation.NewBuilder[Person]().
//	    Declare("first_name", func(p Person) any { return p.FirstName }, validation.Presence(true)).
//	    Declare("number", validation.Field[Person]("Number"), validation.Format(`\d*`)).
//	    Declare("age", validation.Field[Person]("Age"), validation.Type(validation.Integer)).
//	    Build()
//
//	if err := personRules.Validate(p); err != nil {
//	    // err.Error() == "first_name failed presence validation"
//	}
//
// Rules run in declaration order and evaluation stops at the first failure.
// Rules may also be loaded from YAML with the rulefile package.
//
// # Error Handling
//
// Validate returns a *ValidationError (errors.Is(err, ErrValidation)) whose
// message has the form "<attribute> failed <kind> validation". IsValid turns
// that error into false. A rule with an unknown kind or an argument of the
// wrong type is a configuration defect: it yields *UnknownCheckKindError or
// *InvalidArgumentError from every entry point and is never reported as a
// plain false.
//
// # Logging
//
// Pass WithLogger to NewBuilder to log failing rules at debug level and
// misconfigured rules at error level. The default logger discards output.
package validation
