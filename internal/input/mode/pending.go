package mode

// Operator names understood by the pending-operator protocol.
// The grammar that produces them is out of scope; the case-change
// operators are the canonical consumers of the "pending operator plus
// motion argument" contract.
const (
	OpNone       = ""
	OpToggleCase = "toggle-case"
	OpLowercase  = "lowercase"
	OpUppercase  = "uppercase"
)

// Pending is an operator waiting for its motion argument.
type Pending struct {
	// Operator is the pending operator name, or OpNone.
	Operator string

	// Count is the numeric prefix, if any (e.g. 3 in "3g~w").
	Count int
}

// IsActive returns true if an operator is pending.
func (p Pending) IsActive() bool {
	return p.Operator != OpNone
}
