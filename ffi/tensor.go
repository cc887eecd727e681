// File: tensor.go
// Role: Tensor functions — bp_tensor_new, bp_tensor_with_coefficient,
//       bp_tensor_free, bp_tensor_clone, bp_tensor_add_symmetry,
//       bp_tensor_rank, bp_tensor_coefficient, bp_tensor_is_zero,
//       bp_tensor_to_string.
//
// A tensor handle wraps *tensor.Tensor directly (not a value), since
// tensor.Tensor's own API is pointer-receiver and nil-safe; TensorRank,
// TensorCoefficient, and TensorIsZero mirror that nil-safety for handles
// that fail to resolve, rather than reporting NullPointer through a
// second return value the C signatures don't have room for.

package ffi

import (
	"runtime/cgo"

	"github.com/katalvlaran/butlerportugal/symmetry"
	"github.com/katalvlaran/butlerportugal/tensor"
)

// TensorNew creates a tensor with coefficient 1 from name and the
// indices the given handles refer to. Returns NullPointer if any index
// handle fails to resolve, or the classified error if name is empty.
func TensorNew(name string, indexHandles []cgo.Handle) (cgo.Handle, ResultCode) {
	return TensorWithCoefficient(name, indexHandles, 1)
}

// TensorWithCoefficient creates a tensor with an explicit coefficient.
func TensorWithCoefficient(name string, indexHandles []cgo.Handle, coefficient int32) (cgo.Handle, ResultCode) {
	indices := make([]tensor.Index, len(indexHandles))
	for i, ih := range indexHandles {
		idx, ok := lookup[tensor.Index](ih)
		if !ok {
			return 0, NullPointer
		}
		indices[i] = idx
	}
	t, err := tensor.WithCoefficient(name, indices, coefficient)
	if err != nil {
		return 0, classify(err)
	}
	return cgo.NewHandle(t), Success
}

// TensorFree releases h. A zero, stale, or wrong-kind handle is a no-op.
func TensorFree(h cgo.Handle) {
	free[*tensor.Tensor](h)
}

// TensorClone creates a new handle wrapping a deep copy of the tensor h
// refers to. Returns NullPointer if h does not resolve to a tensor.
func TensorClone(h cgo.Handle) (cgo.Handle, ResultCode) {
	t, ok := lookup[*tensor.Tensor](h)
	if !ok {
		return 0, NullPointer
	}
	return cgo.NewHandle(t.Clone()), Success
}

// TensorAddSymmetry attaches the symmetry symH refers to onto the tensor
// tensorH refers to. Returns NullPointer if either handle fails to
// resolve, matching bp_tensor_add_symmetry(NULL, sym) and
// bp_tensor_add_symmetry(tensor, NULL) both reporting BP_NULL_POINTER.
func TensorAddSymmetry(tensorH, symH cgo.Handle) ResultCode {
	t, ok := lookup[*tensor.Tensor](tensorH)
	if !ok {
		return NullPointer
	}
	sym, ok := lookup[symmetry.Symmetry](symH)
	if !ok {
		return NullPointer
	}
	return classify(t.AddSymmetry(sym))
}

// TensorRank returns the tensor's index count, or 0 if h does not
// resolve — matching tensor.Tensor.Rank's own nil-safe 0.
func TensorRank(h cgo.Handle) int {
	t, ok := lookup[*tensor.Tensor](h)
	if !ok {
		return 0
	}
	return t.Rank()
}

// TensorCoefficient returns the tensor's coefficient, or 0 if h does not
// resolve — matching tensor.Tensor.Coefficient's own nil-safe 0.
func TensorCoefficient(h cgo.Handle) int32 {
	t, ok := lookup[*tensor.Tensor](h)
	if !ok {
		return 0
	}
	return t.Coefficient()
}

// TensorIsZero reports whether the tensor is identically zero, or true
// if h does not resolve — matching tensor.Tensor.IsZero's own nil-safe
// true.
func TensorIsZero(h cgo.Handle) bool {
	t, ok := lookup[*tensor.Tensor](h)
	if !ok {
		return true
	}
	return t.IsZero()
}

// TensorString renders the tensor. Returns NullPointer if h does not
// resolve.
func TensorString(h cgo.Handle) (string, ResultCode) {
	t, ok := lookup[*tensor.Tensor](h)
	if !ok {
		return "", NullPointer
	}
	return t.String(), Success
}
