package validation

// Outcome is the result of evaluating a RuleSet against one instance.
// The zero value is Valid; otherwise it names the first failing rule.
type Outcome struct {
	Attribute string
	Kind      Kind
}

// Valid is the outcome of an evaluation in which every rule passed,
// including evaluations of an empty RuleSet.
var Valid = Outcome{}

func (o Outcome) IsValid() bool {
	return o == Valid
}

// Err converts the outcome into a *ValidationError, or nil when valid.
func (o Outcome) Err() error {
	if o.IsValid() {
		return nil
	}
	return &ValidationError{Attribute: o.Attribute, Kind: o.Kind}
}

func (o Outcome) String() string {
	if o.IsValid() {
		return "valid"
	}
	return o.Err().Error()
}
