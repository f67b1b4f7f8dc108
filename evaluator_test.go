package validation_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation"
	"github.com/dmitrymomot/validation/pkg/logger"
)

type dummy struct {
	FirstName any
	Number    any
	Age       any
}

var dummyRules = validation.NewBuilder[dummy]().
	Declare("first_name", func(d dummy) any { return d.FirstName }, validation.Presence(true)).
	Declare("number", func(d dummy) any { return d.Number }, validation.Format(`^\d*$`)).
	Declare("age", func(d dummy) any { return d.Age }, validation.Type(validation.Integer)).
	Build()

func validDummy() dummy {
	return dummy{FirstName: "Harry", Number: "9", Age: 20}
}

func TestValidate(t *testing.T) {
	t.Run("passes when every rule passes", func(t *testing.T) {
		require.NoError(t, dummyRules.Validate(validDummy()))
	})

	t.Run("reports presence failure", func(t *testing.T) {
		d := validDummy()
		d.FirstName = nil
		err := dummyRules.Validate(d)
		require.Error(t, err)
		assert.EqualError(t, err, "first_name failed presence validation")
		assert.ErrorIs(t, err, validation.ErrValidation)
	})

	t.Run("reports format failure", func(t *testing.T) {
		d := validDummy()
		d.Number = "string"
		assert.EqualError(t, dummyRules.Validate(d), "number failed format validation")
	})

	t.Run("reports type failure", func(t *testing.T) {
		d := validDummy()
		d.Age = "string"
		assert.EqualError(t, dummyRules.Validate(d), "age failed type validation")
	})

	t.Run("first declared failing rule wins", func(t *testing.T) {
		d := dummy{FirstName: "Harry", Number: "abc", Age: "abc"}
		err := dummyRules.Validate(d)

		verr, ok := validation.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "number", verr.Attribute)
		assert.Equal(t, validation.KindFormat, verr.Kind)
	})

	t.Run("stops evaluating after the first failure", func(t *testing.T) {
		var calls []string
		rules := validation.NewBuilder[dummy]().
			Declare("a", func(dummy) any { calls = append(calls, "a"); return "" }, validation.Presence(true)).
			Declare("b", func(dummy) any { calls = append(calls, "b"); return "x" }, validation.Presence(true)).
			Build()

		require.Error(t, rules.Validate(dummy{}))
		assert.Equal(t, []string{"a"}, calls)
	})
}

func TestValidate_NoRules(t *testing.T) {
	instances := []dummy{{}, validDummy(), {FirstName: "", Number: []int{}, Age: "x"}}

	t.Run("empty builder", func(t *testing.T) {
		rules := validation.NewBuilder[dummy]().Build()
		for _, d := range instances {
			require.NoError(t, rules.Validate(d))
			ok, err := rules.IsValid(d)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	})

	t.Run("nil rule set", func(t *testing.T) {
		var rules *validation.RuleSet[dummy]
		for _, d := range instances {
			outcome, err := rules.Evaluate(d)
			require.NoError(t, err)
			assert.Equal(t, validation.Valid, outcome)
			assert.True(t, rules.MustBeValid(d))
		}
	})
}

func TestIsValid(t *testing.T) {
	t.Run("true for a valid instance", func(t *testing.T) {
		ok, err := dummyRules.IsValid(validDummy())
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("false for an invalid instance", func(t *testing.T) {
		ok, err := dummyRules.IsValid(dummy{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("agrees with Validate", func(t *testing.T) {
		cases := []dummy{
			validDummy(),
			{},
			{FirstName: "Harry", Number: "9", Age: 20.5},
			{FirstName: "", Number: "9", Age: 20},
			{FirstName: 0, Number: "", Age: int8(1)},
			{FirstName: false, Number: 12, Age: uint(3)},
			{FirstName: []string{}, Number: "1a", Age: 1},
		}
		for _, d := range cases {
			ok, err := dummyRules.IsValid(d)
			require.NoError(t, err)
			assert.Equal(t, dummyRules.Validate(d) == nil, ok, "%+v", d)
		}
	})
}

func TestMultipleChecksOnOneAttribute(t *testing.T) {
	type myString string
	type holder struct{ Name any }

	rules := validation.NewBuilder[holder]().
		Declare("first_name", validation.Field[holder]("Name"),
			validation.Presence(true),
			validation.Format(`\A\d*\z`),
			validation.Type(validation.String),
		).
		Build()

	assert.True(t, rules.MustBeValid(holder{Name: myString("8")}))

	tests := []struct {
		name  string
		value any
		kind  validation.Kind
	}{
		{"empty string", myString(""), validation.KindPresence},
		{"letters", myString("A"), validation.KindFormat},
		{"wrong type", 8, validation.KindType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, rules.MustBeValid(holder{Name: tt.value}))
			verr, ok := validation.AsValidationError(rules.Validate(holder{Name: tt.value}))
			require.True(t, ok)
			assert.Equal(t, tt.kind, verr.Kind)
		})
	}
}

func TestConfigurationDefects(t *testing.T) {
	get := func(d dummy) any { return d.FirstName }

	t.Run("unknown kind is not swallowed", func(t *testing.T) {
		rules := validation.NewBuilder[dummy]().
			Declare("first_name", get, validation.NewCheck("length", 3)).
			Build()

		_, err := rules.Evaluate(validDummy())
		var uerr *validation.UnknownCheckKindError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, validation.Kind("length"), uerr.Kind)
		assert.Equal(t, "first_name", uerr.Attribute)

		ok, err := rules.IsValid(validDummy())
		assert.False(t, ok)
		assert.ErrorIs(t, err, validation.ErrUnknownCheckKind)
		assert.False(t, validation.IsValidationError(err))

		assert.Panics(t, func() { rules.MustBeValid(validDummy()) })
	})

	t.Run("unknown kind after a failing rule is never reached", func(t *testing.T) {
		rules := validation.NewBuilder[dummy]().
			Declare("first_name", get, validation.Presence(true), validation.NewCheck("length", 3)).
			Build()

		ok, err := rules.IsValid(dummy{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("argument of the wrong type", func(t *testing.T) {
		rules := validation.NewBuilder[dummy]().
			Declare("first_name", get, validation.NewCheck(validation.KindType, "Integer")).
			Build()

		err := rules.Validate(validDummy())
		assert.ErrorIs(t, err, validation.ErrInvalidArgument)
		assert.False(t, errors.Is(err, validation.ErrValidation))
	})

	t.Run("defects are logged", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		rules := validation.NewBuilder[dummy](validation.WithLogger(log)).
			Declare("first_name", get, validation.NewCheck("length", 3)).
			Build()

		_, _ = rules.IsValid(validDummy())
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "check_kind=length")
	})
}

func TestLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter(), logger.WithLevel(slog.LevelDebug))
	rules := validation.NewBuilder[dummy](validation.WithLogger(log), validation.WithLogger(nil)).
		Declare("first_name", func(d dummy) any { return d.FirstName }, validation.Presence(true)).
		Build()

	require.Error(t, rules.Validate(dummy{}))
	out := buf.String()
	assert.Contains(t, out, "validation rule failed")
	assert.Contains(t, out, "component=validation")
	assert.Contains(t, out, "attribute=first_name")
	assert.Contains(t, out, "check_kind=presence")
}

func TestOutcome(t *testing.T) {
	assert.True(t, validation.Valid.IsValid())
	assert.NoError(t, validation.Valid.Err())
	assert.Equal(t, "valid", validation.Valid.String())

	o := validation.Outcome{Attribute: "age", Kind: validation.KindType}
	assert.False(t, o.IsValid())
	assert.EqualError(t, o.Err(), "age failed type validation")
	assert.Equal(t, "age failed type validation", o.String())

	outcome, err := dummyRules.Evaluate(dummy{FirstName: "x", Number: "1", Age: "1"})
	require.NoError(t, err)
	assert.Equal(t, o, outcome)
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, validation.IsValidationError(nil))
	assert.False(t, validation.IsValidationError(errors.New("other")))

	err := dummyRules.Validate(dummy{})
	assert.True(t, validation.IsValidationError(err))

	_, ok := validation.AsValidationError(nil)
	assert.False(t, ok)
	_, ok = validation.AsValidationError(errors.New("other"))
	assert.False(t, ok)
}
