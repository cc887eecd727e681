package symmetry

import "errors"

// Sentinel errors for symmetry. Callers should branch with errors.Is.
var (
	// ErrSlotOutOfRange indicates a symmetry referenced a slot outside
	// [0, rank) when expanded against a tensor of that rank.
	ErrSlotOutOfRange = errors.New("symmetry: slot out of range")
)
