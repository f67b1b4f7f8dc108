package validation

// Kind names a check. The evaluator understands KindPresence, KindFormat and
// KindType; any other value can be declared but fails at evaluation time.
type Kind string

const (
	KindPresence Kind = "presence"
	KindFormat   Kind = "format"
	KindType     Kind = "type"
)

func (k Kind) String() string {
	return string(k)
}

// Known reports whether the evaluator has a check function for k.
func (k Kind) Known() bool {
	switch k {
	case KindPresence, KindFormat, KindType:
		return true
	}
	return false
}
