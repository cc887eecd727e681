// File: canonicalize.go
// Role: Canonicalization functions — bp_canonicalize.

package ffi

import (
	"runtime/cgo"

	"github.com/katalvlaran/butlerportugal/canon"
	"github.com/katalvlaran/butlerportugal/tensor"
)

// Canonicalize resolves h to a tensor, runs canon.Canonicalize, and
// wraps the result in a new handle. Returns the zero Handle and
// NullPointer if h does not resolve; the zero Handle and a classified
// ResultCode if canon.Canonicalize itself errors.
func Canonicalize(h cgo.Handle) (cgo.Handle, ResultCode) {
	t, ok := lookup[*tensor.Tensor](h)
	if !ok {
		return 0, NullPointer
	}
	out, err := canon.Canonicalize(t)
	if err != nil {
		return 0, classify(err)
	}
	return cgo.NewHandle(out), Success
}
