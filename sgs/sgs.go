// File: sgs.go
// Role: Build() and the SGS/Level types — one stabilizer-chain level per
//       base point, each holding its orbit, Schreier transversal, and the
//       generators of the stabilizer it was computed from.
// Determinism:
//   - Orbit discovery order, and therefore transversal tie-breaking, is
//     determined entirely by generator order (first-discovered wins),
//     matching spec §4.3's construction contract.

package sgs

import "github.com/katalvlaran/butlerportugal/perm"

// Level is one entry of the stabilizer chain: the orbit Δ_i of base point
// Base under H_i = ⟨Generators⟩, and the signed Schreier transversal
// U_i : Δ_i → H_i mapping each reachable image to a representative
// permutation with representative(Base) == image.
type Level struct {
	// Base is the base point this level stabilizes the prefix up to.
	Base int
	// Orbit lists Δ_i in discovery order.
	Orbit []int
	// Transversal maps each point in Orbit to its representative.
	Transversal map[int]perm.Permutation
	// Generators are G_i, the generators H_i was built from.
	Generators []perm.Permutation
}

// SGS is a stabilizer chain for a permutation group ⟨gens⟩ on
// {0, ..., n-1} along the base (0, 1, ..., n-1).
type SGS struct {
	// Degree is n, the number of points the group acts on.
	Degree int
	// Levels holds one entry per base point, in order.
	Levels []Level
}

// Build constructs the stabilizer chain for ⟨gens⟩ on {0, ..., n-1}.
//
// Every element of gens must have degree n, else ErrDegreeMismatch.
//
// Complexity: O(n · (n + |gens|) · n) in the worst case (n levels, each an
// O(n·|gens|) orbit BFS producing up to O(n·|gens|) Schreier generators
// carried into the next level); for the small, structured generator sets
// symmetry.Generators produces, this is fast in practice (spec §5).
func Build(gens []perm.Permutation, n int) (*SGS, error) {
	for _, g := range gens {
		if g.Degree() != n {
			return nil, ErrDegreeMismatch
		}
	}

	levels := make([]Level, n)
	current := gens
	for i := 0; i < n; i++ {
		orbit, transversal := computeOrbit(current, n, i)
		levels[i] = Level{
			Base:        i,
			Orbit:       orbit,
			Transversal: transversal,
			Generators:  current,
		}
		current = schreierGenerators(current, orbit, transversal)
	}

	return &SGS{Degree: n, Levels: levels}, nil
}

// Order returns |H|, the order of the full group, computed as the
// product of each level's orbit size.
//
// Complexity: O(n).
func (s *SGS) Order() int {
	order := 1
	for _, lvl := range s.Levels {
		order *= len(lvl.Orbit)
	}
	return order
}
