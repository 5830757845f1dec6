package assertions

import "fmt"

// Kind identifies the assertion variant.
type Kind int

const (
	KindUnknown Kind = iota
	KindPresent
	KindAbsent
	KindOrder
	KindTable
	KindBaseline
	KindMath
)

func (k Kind) String() string {
	switch k {
	case KindPresent:
		return "present"
	case KindAbsent:
		return "absent"
	case KindOrder:
		return "order"
	case KindTable:
		return "table"
	case KindBaseline:
		return "baseline"
	case KindMath:
		return "math"
	default:
		return "unknown"
	}
}

// ParseKind maps a record's type field to a Kind.
func ParseKind(s string) (Kind, error) {
	for k := KindPresent; k <= KindMath; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown assertion type %q", s)
}

// ReviewState records whether a human has reviewed the assertion. It never
// affects evaluation.
type ReviewState int

const (
	Unchecked ReviewState = iota
	Verified
	Rejected
)

func (s ReviewState) String() string {
	switch s {
	case Verified:
		return "verified"
	case Rejected:
		return "rejected"
	default:
		return "unchecked"
	}
}

// ParseReviewState maps a record's checked field to a ReviewState. The
// empty string is Unchecked.
func ParseReviewState(s string) (ReviewState, error) {
	switch s {
	case "", "unchecked":
		return Unchecked, nil
	case "verified":
		return Verified, nil
	case "rejected":
		return Rejected, nil
	default:
		return Unchecked, fmt.Errorf("unknown review state %q", s)
	}
}
