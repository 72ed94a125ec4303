// Package search implements a binary search that records every step it takes,
// so the run can be replayed step by step in a classroom visualization.
//
// Search is pure: no I/O, no shared state, safe for concurrent use.
// It does not verify that the sequence is sorted; callers run ValidateSequence
// at the boundary first.
package search

import "math/bits"

// Step is one iteration of the search loop. Low and High are the inclusive
// window bounds at the time the step was recorded.
type Step struct {
	Low        int        `json:"low"`
	High       int        `json:"high"`
	Mid        int        `json:"mid"`
	MidValue   int        `json:"mid_value"`
	Comparison Comparison `json:"comparison"`
}

// Result is the outcome of a single Search call.
// Index is non-nil iff Found, and then equals the Mid of the last step.
type Result struct {
	Found bool   `json:"found"`
	Index *int   `json:"index"`
	Steps []Step `json:"steps"`
}

// Search runs binary search for target over seq and returns the result with
// the full trace. With duplicates, the returned index is whichever occurrence
// the midpoint lands on first, not necessarily the leftmost or rightmost.
func Search(seq []int, target int) Result {
	steps := make([]Step, 0, MaxSteps(len(seq)))

	low, high := 0, len(seq)-1
	for low <= high {
		// low, high >= 0 here; the sum cannot overflow for any slice length.
		mid := low + (high-low)/2
		midValue := seq[mid]
		cmp := compare(midValue, target)

		steps = append(steps, Step{
			Low:        low,
			High:       high,
			Mid:        mid,
			MidValue:   midValue,
			Comparison: cmp,
		})

		switch cmp {
		case Equal:
			index := mid
			return Result{Found: true, Index: &index, Steps: steps}
		case LessThanMoveLow:
			low = mid + 1
		case GreaterThanMoveHigh:
			high = mid - 1
		}
	}

	return Result{Found: false, Index: nil, Steps: steps}
}

// MaxSteps is the upper bound ceil(log2(n+1)) on the trace length for a
// sorted sequence of length n.
func MaxSteps(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}
