package perm

import "errors"

// Sentinel errors for perm. Callers should branch with errors.Is, never
// string comparison.
var (
	// ErrNotBijective indicates the supplied image does not visit every
	// point of {0, ..., len(image)-1} exactly once.
	ErrNotBijective = errors.New("perm: image is not a bijection")

	// ErrInvalidSign indicates a sign value other than +1 or -1.
	ErrInvalidSign = errors.New("perm: sign must be +1 or -1")
)
