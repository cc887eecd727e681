package sgs_test

import (
	"testing"

	"github.com/katalvlaran/butlerportugal/perm"
	"github.com/katalvlaran/butlerportugal/sgs"
	"github.com/katalvlaran/butlerportugal/symmetry"
	"github.com/stretchr/testify/assert"
)

func TestBuild_DegreeMismatch(t *testing.T) {
	gens := []perm.Permutation{perm.Identity(3)}
	_, err := sgs.Build(gens, 4)
	assert.ErrorIs(t, err, sgs.ErrDegreeMismatch)
}

func TestBuild_TrivialGroup(t *testing.T) {
	chain, err := sgs.Build(nil, 3)
	assert.NoError(t, err)
	assert.Equal(t, 1, chain.Order()) // no generators => trivial group
	for _, lvl := range chain.Levels {
		assert.Equal(t, []int{lvl.Base}, lvl.Orbit) // every orbit is a singleton
	}
}

func TestBuild_SymmetricGroupOnThreePoints(t *testing.T) {
	s := symmetry.NewSymmetric([]int{0, 1, 2})
	gens, err := s.Generators(3)
	assert.NoError(t, err)

	chain, err := sgs.Build(gens, 3)
	assert.NoError(t, err)
	assert.Equal(t, 6, chain.Order()) // |S_3| = 3! = 6
}

func TestBuild_AntisymmetricPairHasOrderTwo(t *testing.T) {
	s := symmetry.NewAntisymmetric([]int{0, 1})
	gens, err := s.Generators(2)
	assert.NoError(t, err)

	chain, err := sgs.Build(gens, 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, chain.Order())
}

func TestBuild_RiemannSymmetryGroupHasOrderEight(t *testing.T) {
	var gens []perm.Permutation
	for _, s := range []symmetry.Symmetry{
		symmetry.NewAntisymmetric([]int{0, 1}),
		symmetry.NewAntisymmetric([]int{2, 3}),
		symmetry.NewSymmetricPairs([][2]int{{0, 1}, {2, 3}}),
	} {
		g, err := s.Generators(4)
		assert.NoError(t, err)
		gens = append(gens, g...)
	}

	chain, err := sgs.Build(gens, 4)
	assert.NoError(t, err)
	assert.Equal(t, 8, chain.Order()) // classic Riemann-tensor symmetry group order
}

func TestBuild_CyclicGroupOnThreePoints(t *testing.T) {
	s := symmetry.NewCyclic([]int{0, 1, 2})
	gens, err := s.Generators(3)
	assert.NoError(t, err)

	chain, err := sgs.Build(gens, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, chain.Order()) // Z_3
}

func TestTransversal_RepresentativesMapBaseToPoint(t *testing.T) {
	s := symmetry.NewSymmetric([]int{0, 1, 2})
	gens, err := s.Generators(3)
	assert.NoError(t, err)
	chain, err := sgs.Build(gens, 3)
	assert.NoError(t, err)

	lvl0 := chain.Levels[0]
	for point, rep := range lvl0.Transversal {
		assert.Equal(t, point, rep.At(0)) // u(base) == point, by construction
	}
}
