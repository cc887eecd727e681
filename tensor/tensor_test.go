package tensor_test

import (
	"testing"

	"github.com/katalvlaran/butlerportugal/symmetry"
	"github.com/katalvlaran/butlerportugal/tensor"
	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultsCoefficientToOne(t *testing.T) {
	idx := []tensor.Index{tensor.NewIndex("a", 0), tensor.NewIndex("b", 1)}
	tn, err := tensor.New("g", idx)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), tn.Coefficient())
	assert.Equal(t, 2, tn.Rank())
	assert.Equal(t, "g", tn.Name())
}

func TestNew_RejectsEmptyName(t *testing.T) {
	_, err := tensor.New("", nil)
	assert.ErrorIs(t, err, tensor.ErrEmptyName)
}

func TestWithCoefficient(t *testing.T) {
	idx := []tensor.Index{tensor.NewIndex("i", 0)}
	tn, err := tensor.WithCoefficient("A", idx, -3)
	assert.NoError(t, err)
	assert.Equal(t, int32(-3), tn.Coefficient())
}

func TestNilSafety(t *testing.T) {
	var tn *tensor.Tensor
	assert.Equal(t, 0, tn.Rank())
	assert.Equal(t, int32(0), tn.Coefficient())
	assert.Equal(t, "", tn.Name())
	assert.True(t, tn.IsZero())
	assert.Nil(t, tn.Clone())
}

func TestAddSymmetry_NilTensor(t *testing.T) {
	var tn *tensor.Tensor
	err := tn.AddSymmetry(symmetry.NewSymmetric([]int{0, 1}))
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
}

func TestAddSymmetry_IdempotentReattach(t *testing.T) {
	idx := []tensor.Index{tensor.NewIndex("a", 0), tensor.NewIndex("b", 1)}
	tn, _ := tensor.New("S", idx)
	sym := symmetry.NewSymmetric([]int{0, 1})

	assert.NoError(t, tn.AddSymmetry(sym))
	assert.NoError(t, tn.AddSymmetry(sym))
	assert.Len(t, tn.Symmetries(), 1) // re-attaching is a no-op
}

func TestIsZero_RepeatedAntisymmetricIndex(t *testing.T) {
	idx := []tensor.Index{tensor.NewIndex("a", 0), tensor.NewIndex("a", 1)}
	tn, _ := tensor.New("A", idx)
	assert.NoError(t, tn.AddSymmetry(symmetry.NewAntisymmetric([]int{0, 1})))
	assert.True(t, tn.IsZero())
}

func TestIsZero_DistinctIndicesNotZero(t *testing.T) {
	idx := []tensor.Index{tensor.NewIndex("a", 0), tensor.NewIndex("b", 1)}
	tn, _ := tensor.New("A", idx)
	assert.NoError(t, tn.AddSymmetry(symmetry.NewAntisymmetric([]int{0, 1})))
	assert.False(t, tn.IsZero())
}

func TestClone_Independent(t *testing.T) {
	idx := []tensor.Index{tensor.NewIndex("a", 0)}
	tn, _ := tensor.New("T", idx)
	assert.NoError(t, tn.AddSymmetry(symmetry.NewSymmetric([]int{0})))

	clone := tn.Clone()
	assert.NoError(t, clone.AddSymmetry(symmetry.NewCyclic([]int{0})))
	assert.Len(t, tn.Symmetries(), 1)    // original untouched
	assert.Len(t, clone.Symmetries(), 2) // clone independently mutated
}

func TestString_DefaultCoefficientOmitted(t *testing.T) {
	idx := []tensor.Index{tensor.NewIndex("a", 0), tensor.NewContravariantIndex("b", 1)}
	tn, _ := tensor.New("T", idx)
	assert.Equal(t, "T_{a}^{b}", tn.String())
}

func TestString_NegativeOneCoefficient(t *testing.T) {
	idx := []tensor.Index{tensor.NewIndex("a", 0), tensor.NewIndex("b", 1)}
	tn, _ := tensor.WithCoefficient("A", idx, -1)
	assert.Equal(t, "-A_{a b}", tn.String())
}

func TestString_GeneralCoefficient(t *testing.T) {
	idx := []tensor.Index{tensor.NewIndex("i", 0)}
	tn, _ := tensor.WithCoefficient("A", idx, -3)
	assert.Equal(t, "-3·A_{i}", tn.String())
}

func TestString_ZeroTensorRendersZero(t *testing.T) {
	idx := []tensor.Index{tensor.NewIndex("a", 0)}
	tn, _ := tensor.WithCoefficient("T", idx, 0)
	assert.Equal(t, "0", tn.String())
}

func TestIndexEqual_IgnoresPosition(t *testing.T) {
	a := tensor.NewIndex("mu", 0)
	b := tensor.NewIndex("mu", 5)
	assert.True(t, a.Equal(b))
}

func TestIndexCompare_VarianceThenNameThenPosition(t *testing.T) {
	cov := tensor.NewIndex("z", 0)
	contra := tensor.NewContravariantIndex("a", 0)
	assert.True(t, cov.Compare(contra) < 0) // covariant sorts before contravariant regardless of name

	a := tensor.NewIndex("a", 1)
	b := tensor.NewIndex("b", 0)
	assert.True(t, a.Compare(b) < 0) // name breaks the tie before position
}
