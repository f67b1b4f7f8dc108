package validation

// Instance pairs a value with the rules of its type, giving it argument-free
// IsValid and Validate methods. Embed it, or return it from a method on the
// host type:
//
//	func (u User) Validation() validation.Instance[User] {
//		return validation.Bind(userRules, u)
//	}
type Instance[T any] struct {
	rules *RuleSet[T]
	value T
}

// Bind attaches rules to v. A nil RuleSet makes every instance valid.
func Bind[T any](rules *RuleSet[T], v T) Instance[T] {
	return Instance[T]{rules: rules, value: v}
}

func (i Instance[T]) Value() T {
	return i.value
}

func (i Instance[T]) Evaluate() (Outcome, error) {
	return i.rules.Evaluate(i.value)
}

func (i Instance[T]) Validate() error {
	return i.rules.Validate(i.value)
}

func (i Instance[T]) IsValid() (bool, error) {
	return i.rules.IsValid(i.value)
}
