package main

import "errors"

// Sentinel errors for bpctl. Callers should branch with errors.Is.
var (
	// ErrMissingIndices indicates a tensor config declared no indices.
	ErrMissingIndices = errors.New("bpctl: tensor config has no indices")

	// ErrUnknownSymmetryKind indicates a symmetry config's kind field
	// did not match one of "symmetric", "antisymmetric",
	// "symmetric_pairs", or "cyclic".
	ErrUnknownSymmetryKind = errors.New("bpctl: unknown symmetry kind")
)
