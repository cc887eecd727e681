// File: index.go
// Role: TensorIndex functions — bp_index_new, bp_index_contravariant,
//       bp_index_free, bp_index_clone.

package ffi

import (
	"runtime/cgo"

	"github.com/katalvlaran/butlerportugal/tensor"
)

// IndexNew creates a covariant index handle. Returns NullPointer-caliber
// failure (the zero Handle, InvalidArgument) if name is empty —
// tensor.Index has no such check of its own, since a bare Index is never
// rejected outside FFI construction, but bp_index_new documents NULL on
// invalid input.
func IndexNew(name string, position int) (cgo.Handle, ResultCode) {
	if name == "" {
		return 0, InvalidArgument
	}
	return cgo.NewHandle(tensor.NewIndex(name, position)), Success
}

// IndexContravariant creates a contravariant index handle.
func IndexContravariant(name string, position int) (cgo.Handle, ResultCode) {
	if name == "" {
		return 0, InvalidArgument
	}
	return cgo.NewHandle(tensor.NewContravariantIndex(name, position)), Success
}

// IndexFree releases h. A zero, stale, or wrong-kind handle is a no-op.
func IndexFree(h cgo.Handle) {
	free[tensor.Index](h)
}

// IndexClone creates a new handle wrapping an independent copy of the
// index h refers to. Returns NullPointer if h does not resolve to an
// Index.
func IndexClone(h cgo.Handle) (cgo.Handle, ResultCode) {
	idx, ok := lookup[tensor.Index](h)
	if !ok {
		return 0, NullPointer
	}
	return cgo.NewHandle(idx.Clone()), Success
}
