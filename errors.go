package qsearch

import "fmt"

// ResourceError reports a qubit lifecycle misuse: allocating beyond the
// simulator's capacity, asking for a non-positive count, or releasing a
// handle that is not live.
type ResourceError struct {
	Op     string
	Reason string
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("qsearch: %s: %s", e.Op, e.Reason)
}

// StateLeakError reports a qubit released while still carrying amplitude
// mass on |1⟩. It always indicates an uncompute bug in an oracle or a
// within/apply block, so callers must treat it as fatal and never retry.
type StateLeakError struct {
	Qubit       int
	Probability float64
}

func (e *StateLeakError) Error() string {
	return fmt.Sprintf(
		"qsearch: released qubit %d holds |1⟩ probability %g, ancilla was not uncomputed",
		e.Qubit, e.Probability,
	)
}

// SearchExhaustedError reports that the search driver ran out of iteration
// budget without measuring a valid placement.
type SearchExhaustedError struct {
	Cap int
}

func (e *SearchExhaustedError) Error() string {
	return fmt.Sprintf(
		"qsearch: no valid configuration found within %d Grover iterations", e.Cap,
	)
}
