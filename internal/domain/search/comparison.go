package search

import "fmt"

// Comparison is the outcome of comparing the midpoint value against the target.
type Comparison int

const (
	// Equal means seq[mid] == target; the search stops on this step.
	Equal Comparison = iota + 1
	// LessThanMoveLow means seq[mid] < target; low moves to mid+1.
	LessThanMoveLow
	// GreaterThanMoveHigh means seq[mid] > target; high moves to mid-1.
	GreaterThanMoveHigh
)

// String returns the tag name (EQUAL, LESS_THAN_MOVE_LOW, GREATER_THAN_MOVE_HIGH).
func (c Comparison) String() string {
	switch c {
	case Equal:
		return "EQUAL"
	case LessThanMoveLow:
		return "LESS_THAN_MOVE_LOW"
	case GreaterThanMoveHigh:
		return "GREATER_THAN_MOVE_HIGH"
	default:
		return fmt.Sprintf("Comparison(%d)", int(c))
	}
}

// Label is the human-readable description shown to students in the trace table.
// It is also the wire representation of the comparison.
func (c Comparison) Label() string {
	switch c {
	case Equal:
		return "arr[mid] == target"
	case LessThanMoveLow:
		return "arr[mid] < target → mover low"
	case GreaterThanMoveHigh:
		return "arr[mid] > target → mover high"
	default:
		return c.String()
	}
}

// MarshalText encodes the comparison as its Label.
func (c Comparison) MarshalText() ([]byte, error) {
	switch c {
	case Equal, LessThanMoveLow, GreaterThanMoveHigh:
		return []byte(c.Label()), nil
	default:
		return nil, fmt.Errorf("search: invalid comparison %d", int(c))
	}
}

// compare classifies midValue against target.
func compare(midValue, target int) Comparison {
	switch {
	case midValue == target:
		return Equal
	case midValue < target:
		return LessThanMoveLow
	default:
		return GreaterThanMoveHigh
	}
}
