package tensor

import "errors"

// Sentinel errors for tensor. Callers should branch with errors.Is.
var (
	// ErrEmptyName indicates a Tensor or Index was constructed with an
	// empty name.
	ErrEmptyName = errors.New("tensor: name is empty")

	// ErrNilTensor indicates an operation required a non-nil *Tensor.
	ErrNilTensor = errors.New("tensor: tensor is nil")

	// ErrCoefficientOverflow indicates a coefficient multiplication would
	// overflow int32 (spec §7).
	ErrCoefficientOverflow = errors.New("tensor: coefficient overflow")
)
