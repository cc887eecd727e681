package canon

import "errors"

// Sentinel errors for canon. Callers should branch with errors.Is.
var (
	// ErrNilTensor indicates Canonicalize was called with a nil *Tensor.
	ErrNilTensor = errors.New("canon: tensor is nil")

	// ErrNoSurvivors indicates the search's candidate set emptied at some
	// level — a defensive check that should be unreachable, since the
	// current candidate itself (or the element it was extended from)
	// always matches its own placed index (spec §7).
	ErrNoSurvivors = errors.New("canon: search produced no surviving candidate")
)
