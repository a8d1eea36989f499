package rows

// Kind is the constraint type carried by solver rows and by the mixture
// constraint. The wire vocabulary matches the computation service.
type Kind string

const (
	KindFree         Kind = "free"
	KindRange        Kind = "range"
	KindObjectiveMin Kind = "objectiveMin"
	KindObjectiveMax Kind = "objectiveMax"
	KindSetValue     Kind = "setValue"
)

// Kinds lists the selectable constraint kinds in display order.
var Kinds = []Kind{KindFree, KindRange, KindObjectiveMin, KindObjectiveMax, KindSetValue}

// ParseKind normalizes a raw kind string. The service's legacy "fixed"
// spelling is accepted as an alias of setValue; anything unknown is free.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindRange, KindObjectiveMin, KindObjectiveMax, KindSetValue:
		return Kind(s)
	}
	if s == "fixed" {
		return KindSetValue
	}
	return KindFree
}

// ActiveFields reports which of the value sub-fields are live for a kind.
// The row keeps all field slots either way; inactive ones are simply
// excluded from submission and disabled in the UI.
func (k Kind) ActiveFields() (value, minMax bool) {
	switch k {
	case KindSetValue:
		return true, false
	case KindRange:
		return false, true
	default:
		return false, false
	}
}
