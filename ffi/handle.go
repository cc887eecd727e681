// File: handle.go
// Role: Generic runtime/cgo.Handle lookup shared by every bp_* wrapper,
//       plus the error-to-ResultCode classification used at each
//       boundary crossing (spec §6, §7).

package ffi

import (
	"errors"
	"runtime/cgo"

	"github.com/katalvlaran/butlerportugal/canon"
	"github.com/katalvlaran/butlerportugal/symmetry"
	"github.com/katalvlaran/butlerportugal/tensor"
)

// lookup resolves h to a value of type T, returning ok=false for the zero
// Handle, a handle whose stored value is not a T, or a handle that
// runtime/cgo itself rejects as invalid (already deleted, or never
// issued by this process). A misbehaving C caller can pass an arbitrary
// uintptr; lookup never panics in response.
func lookup[T any](h cgo.Handle) (v T, ok bool) {
	if h == 0 {
		return v, false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	val, assertOk := h.Value().(T)
	if !assertOk {
		return v, false
	}
	return val, true
}

// free deletes h if it resolves to a T, silently ignoring an invalid or
// wrong-kind handle — bp_*_free is documented as a NULL-safe no-op on
// anything it cannot recognize.
func free[T any](h cgo.Handle) {
	if _, ok := lookup[T](h); !ok {
		return
	}
	h.Delete()
}

// classify maps an error returned by tensor/symmetry/canon to the
// ResultCode the C ABI reports for it. Validation failures — bad slots,
// empty names, and an overflowing coefficient product — are
// InvalidArgument per spec §7; AllocationError is reserved for memory
// exhaustion, which this Go implementation never signals as an error. A
// nil-tensor error reaching this far indicates the caller's handle
// resolved but the callee still rejected it, which ffi's own NullPointer
// checks should have already caught, so it is folded into InvalidArgument
// rather than given its own case.
func classify(err error) ResultCode {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, canon.ErrNoSurvivors):
		return CanonicalizationError
	case errors.Is(err, tensor.ErrEmptyName),
		errors.Is(err, tensor.ErrNilTensor),
		errors.Is(err, tensor.ErrCoefficientOverflow),
		errors.Is(err, symmetry.ErrSlotOutOfRange),
		errors.Is(err, canon.ErrNilTensor):
		return InvalidArgument
	default:
		return CanonicalizationError
	}
}
