package search

import (
	"errors"
	"slices"
)

// Validation errors. Their messages are returned to API clients verbatim.
var (
	ErrEmptySequence    = errors.New("El array no puede estar vacío.")
	ErrUnsortedSequence = errors.New("El array debe venir ordenado de forma ascendente.")
)

// ValidateSequence checks the preconditions Search relies on: the sequence is
// non-empty and sorted in non-decreasing order. Equal neighbours are allowed.
func ValidateSequence(seq []int) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	if !slices.IsSorted(seq) {
		return ErrUnsortedSequence
	}
	return nil
}

// IsValidationError reports whether err is one of the sequence validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptySequence) || errors.Is(err, ErrUnsortedSequence)
}
