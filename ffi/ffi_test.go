package ffi_test

import (
	"math"
	"runtime/cgo"
	"testing"

	"github.com/katalvlaran/butlerportugal/ffi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_IsNonEmptyAndStable(t *testing.T) {
	assert.NotEmpty(t, ffi.Version)
	assert.Equal(t, ffi.Version, ffi.Version)
}

func TestIndex_NewCloneFree(t *testing.T) {
	h, rc := ffi.IndexNew("mu", 0)
	require.Equal(t, ffi.Success, rc)

	clone, rc := ffi.IndexClone(h)
	require.Equal(t, ffi.Success, rc)
	assert.NotEqual(t, h, clone) // independent handle, not an alias

	ffi.IndexFree(h)
	ffi.IndexFree(clone)
}

func TestIndex_Contravariant(t *testing.T) {
	h, rc := ffi.IndexContravariant("nu", 1)
	require.Equal(t, ffi.Success, rc)
	ffi.IndexFree(h)
}

func TestIndex_EmptyNameIsInvalidArgument(t *testing.T) {
	_, rc := ffi.IndexNew("", 0)
	assert.Equal(t, ffi.InvalidArgument, rc)
}

func TestIndex_NullSafety(t *testing.T) {
	_, rc := ffi.IndexClone(0)
	assert.Equal(t, ffi.NullPointer, rc)

	ffi.IndexFree(0) // must not panic
}

func TestIndex_CloneOfFreedHandleIsNullPointer(t *testing.T) {
	h, rc := ffi.IndexNew("a", 0)
	require.Equal(t, ffi.Success, rc)
	ffi.IndexFree(h)

	_, rc = ffi.IndexClone(h)
	assert.Equal(t, ffi.NullPointer, rc)
}

func TestSymmetry_AllFourKindsAndClone(t *testing.T) {
	sym := ffi.SymmetrySymmetric([]int{0, 1})
	clone, rc := ffi.SymmetryClone(sym)
	require.Equal(t, ffi.Success, rc)
	ffi.SymmetryFree(sym)
	ffi.SymmetryFree(clone)

	anti := ffi.SymmetryAntisymmetric([]int{0, 1})
	ffi.SymmetryFree(anti)

	cyc := ffi.SymmetryCyclic([]int{0, 1, 2})
	ffi.SymmetryFree(cyc)

	pairs, rc := ffi.SymmetrySymmetricPairs([]int{0, 1, 2, 3})
	require.Equal(t, ffi.Success, rc)
	ffi.SymmetryFree(pairs)
}

func TestSymmetry_OddPairListIsInvalidArgument(t *testing.T) {
	_, rc := ffi.SymmetrySymmetricPairs([]int{0, 1, 2})
	assert.Equal(t, ffi.InvalidArgument, rc)
}

func TestSymmetry_NullSafety(t *testing.T) {
	_, rc := ffi.SymmetryClone(0)
	assert.Equal(t, ffi.NullPointer, rc)

	ffi.SymmetryFree(0) // must not panic
}

func newIndexHandles(t *testing.T, names ...string) []cgo.Handle {
	t.Helper()
	handles := make([]cgo.Handle, len(names))
	for i, name := range names {
		h, rc := ffi.IndexNew(name, i)
		require.Equal(t, ffi.Success, rc)
		handles[i] = h
	}
	return handles
}

func TestTensor_NewRankCoefficientIsZeroString(t *testing.T) {
	handles := newIndexHandles(t, "a", "b")
	h, rc := ffi.TensorNew("T", handles)
	require.Equal(t, ffi.Success, rc)

	assert.Equal(t, 2, ffi.TensorRank(h))
	assert.Equal(t, int32(1), ffi.TensorCoefficient(h))
	assert.False(t, ffi.TensorIsZero(h))

	str, rc := ffi.TensorString(h)
	require.Equal(t, ffi.Success, rc)
	assert.Equal(t, "T_{a b}", str)

	ffi.TensorFree(h)
	for _, ih := range handles {
		ffi.IndexFree(ih)
	}
}

func TestTensor_WithCoefficient(t *testing.T) {
	handles := newIndexHandles(t, "a", "b")
	h, rc := ffi.TensorWithCoefficient("T", handles, -3)
	require.Equal(t, ffi.Success, rc)
	assert.Equal(t, int32(-3), ffi.TensorCoefficient(h))
	ffi.TensorFree(h)
}

func TestTensor_CloneIsIndependent(t *testing.T) {
	handles := newIndexHandles(t, "a", "b")
	h, rc := ffi.TensorNew("T", handles)
	require.Equal(t, ffi.Success, rc)

	clone, rc := ffi.TensorClone(h)
	require.Equal(t, ffi.Success, rc)
	assert.NotEqual(t, h, clone)
	assert.Equal(t, ffi.TensorRank(h), ffi.TensorRank(clone))

	ffi.TensorFree(h)
	ffi.TensorFree(clone)
}

func TestTensor_AddSymmetry(t *testing.T) {
	handles := newIndexHandles(t, "b", "a")
	h, rc := ffi.TensorNew("g", handles)
	require.Equal(t, ffi.Success, rc)

	sym := ffi.SymmetrySymmetric([]int{0, 1})
	rc = ffi.TensorAddSymmetry(h, sym)
	require.Equal(t, ffi.Success, rc)

	out, rc := ffi.Canonicalize(h)
	require.Equal(t, ffi.Success, rc)
	str, rc := ffi.TensorString(out)
	require.Equal(t, ffi.Success, rc)
	assert.Equal(t, "g_{a b}", str)

	ffi.SymmetryFree(sym)
	ffi.TensorFree(h)
	ffi.TensorFree(out)
}

func TestTensor_AddSymmetryNullSafety(t *testing.T) {
	sym := ffi.SymmetrySymmetric([]int{0, 1})
	assert.Equal(t, ffi.NullPointer, ffi.TensorAddSymmetry(0, sym))
	ffi.SymmetryFree(sym)

	handles := newIndexHandles(t, "a", "b")
	h, rc := ffi.TensorNew("T", handles)
	require.Equal(t, ffi.Success, rc)
	assert.Equal(t, ffi.NullPointer, ffi.TensorAddSymmetry(h, 0))
	ffi.TensorFree(h)
}

func TestTensor_NullHandleQueries(t *testing.T) {
	assert.Equal(t, 0, ffi.TensorRank(0))
	assert.Equal(t, int32(0), ffi.TensorCoefficient(0))
	assert.True(t, ffi.TensorIsZero(0))

	_, rc := ffi.TensorString(0)
	assert.Equal(t, ffi.NullPointer, rc)

	ffi.TensorFree(0) // must not panic
}

func TestTensor_IsZeroDetectsRepeatedAntisymmetricIndex(t *testing.T) {
	handles := newIndexHandles(t, "a", "a")
	h, rc := ffi.TensorNew("A", handles)
	require.Equal(t, ffi.Success, rc)

	sym := ffi.SymmetryAntisymmetric([]int{0, 1})
	require.Equal(t, ffi.Success, ffi.TensorAddSymmetry(h, sym))

	assert.True(t, ffi.TensorIsZero(h))

	ffi.SymmetryFree(sym)
	ffi.TensorFree(h)
}

// TestCanonicalize_RiemannLikeTensor mirrors example.c's canonicalization
// walkthrough: R_{b a d c} under antisym(0,1), antisym(2,3), and
// symmetric-pair-exchange({0,1},{2,3}) canonicalizes to R_{a b c d}.
func TestCanonicalize_RiemannLikeTensor(t *testing.T) {
	handles := newIndexHandles(t, "b", "a", "d", "c")
	h, rc := ffi.TensorNew("R", handles)
	require.Equal(t, ffi.Success, rc)

	antisym01 := ffi.SymmetryAntisymmetric([]int{0, 1})
	antisym23 := ffi.SymmetryAntisymmetric([]int{2, 3})
	pairSwap, rc := ffi.SymmetrySymmetricPairs([]int{0, 1, 2, 3})
	require.Equal(t, ffi.Success, rc)

	require.Equal(t, ffi.Success, ffi.TensorAddSymmetry(h, antisym01))
	require.Equal(t, ffi.Success, ffi.TensorAddSymmetry(h, antisym23))
	require.Equal(t, ffi.Success, ffi.TensorAddSymmetry(h, pairSwap))

	out, rc := ffi.Canonicalize(h)
	require.Equal(t, ffi.Success, rc)
	str, rc := ffi.TensorString(out)
	require.Equal(t, ffi.Success, rc)
	assert.Equal(t, "R_{a b c d}", str)

	ffi.SymmetryFree(antisym01)
	ffi.SymmetryFree(antisym23)
	ffi.SymmetryFree(pairSwap)
	ffi.TensorFree(h)
	ffi.TensorFree(out)
}

func TestCanonicalize_NullTensorIsNullPointer(t *testing.T) {
	out, rc := ffi.Canonicalize(0)
	assert.Equal(t, cgo.Handle(0), out)
	assert.Equal(t, ffi.NullPointer, rc)
}

// TestCanonicalize_CoefficientOverflowIsInvalidArgument guards the §7
// taxonomy: an overflowing coefficient product is a caller-supplied bad
// value, not memory exhaustion, so it must report InvalidArgument rather
// than AllocationError.
func TestCanonicalize_CoefficientOverflowIsInvalidArgument(t *testing.T) {
	handles := newIndexHandles(t, "b", "a")
	h, rc := ffi.TensorWithCoefficient("F", handles, math.MinInt32)
	require.Equal(t, ffi.Success, rc)

	sym := ffi.SymmetryAntisymmetric([]int{0, 1})
	require.Equal(t, ffi.Success, ffi.TensorAddSymmetry(h, sym))

	_, rc = ffi.Canonicalize(h)
	assert.Equal(t, ffi.InvalidArgument, rc)

	ffi.SymmetryFree(sym)
	ffi.TensorFree(h)
}
