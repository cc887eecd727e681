// File: symmetry.go
// Role: Symmetry functions — bp_symmetry_symmetric, bp_symmetry_antisymmetric,
//       bp_symmetry_symmetric_pairs, bp_symmetry_cyclic, bp_symmetry_free,
//       bp_symmetry_clone.
//
// Slot ranges are not validated here: symmetry.Symmetry carries no rank,
// so out-of-range slots surface only once a tensor's rank is known — at
// canon.Canonicalize, which expands each attached Symmetry into concrete
// generators and reports ErrSlotOutOfRange as InvalidArgument via
// classify. TensorAddSymmetry itself only attaches the Symmetry value;
// expansion is deferred to canonicalization (spec §7, "canonicalizer
// validates up front").

package ffi

import (
	"runtime/cgo"

	"github.com/katalvlaran/butlerportugal/symmetry"
)

// SymmetrySymmetric creates a Symmetric generator over slots.
func SymmetrySymmetric(slots []int) cgo.Handle {
	return cgo.NewHandle(symmetry.NewSymmetric(slots))
}

// SymmetryAntisymmetric creates an Antisymmetric generator over slots.
func SymmetryAntisymmetric(slots []int) cgo.Handle {
	return cgo.NewHandle(symmetry.NewAntisymmetric(slots))
}

// SymmetrySymmetricPairs creates a SymmetricPairs generator from a flat
// [a0, b0, a1, b1, ...] slot list, matching the C header's flattened
// array convention. Returns InvalidArgument if flat has odd length.
func SymmetrySymmetricPairs(flat []int) (cgo.Handle, ResultCode) {
	if len(flat)%2 != 0 {
		return 0, InvalidArgument
	}
	pairs := make([][2]int, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		pairs = append(pairs, [2]int{flat[i], flat[i+1]})
	}
	return cgo.NewHandle(symmetry.NewSymmetricPairs(pairs)), Success
}

// SymmetryCyclic creates a Cyclic generator over slots.
func SymmetryCyclic(slots []int) cgo.Handle {
	return cgo.NewHandle(symmetry.NewCyclic(slots))
}

// SymmetryFree releases h. A zero, stale, or wrong-kind handle is a no-op.
func SymmetryFree(h cgo.Handle) {
	free[symmetry.Symmetry](h)
}

// SymmetryClone creates a new handle wrapping an independent copy of the
// symmetry h refers to. Returns NullPointer if h does not resolve to a
// Symmetry.
func SymmetryClone(h cgo.Handle) (cgo.Handle, ResultCode) {
	sym, ok := lookup[symmetry.Symmetry](h)
	if !ok {
		return 0, NullPointer
	}
	return cgo.NewHandle(sym.Clone()), Success
}
