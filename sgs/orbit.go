// File: orbit.go
// Role: Breadth-first orbit discovery over the Schreier graph induced by
//       a generator set, and the Schreier-lemma generators of the point
//       stabilizer it yields. Adapted from algorithms/bfs.go's walker: the
//       "neighbors" of a point j are its images g(j) under each generator,
//       and each newly-discovered point is tagged with a representative
//       permutation instead of a BFS predecessor.

package sgs

import "github.com/katalvlaran/butlerportugal/perm"

// computeOrbit performs a breadth-first search of the orbit of base under
// the group generated by gens, acting on {0, ..., n-1}. It returns the
// orbit in discovery order and a Schreier transversal mapping each point
// to a representative permutation u with u.At(base) == point.
//
// Complexity: O(|orbit| · len(gens)).
func computeOrbit(gens []perm.Permutation, n, base int) ([]int, map[int]perm.Permutation) {
	transversal := map[int]perm.Permutation{base: perm.Identity(n)}
	orbit := []int{base}
	queue := []int{base}

	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]
		uj := transversal[j]

		for _, g := range gens {
			k := g.At(j)
			if _, seen := transversal[k]; seen {
				continue
			}
			// New point reached via g from j: u_k = g ∘ u_j, so
			// u_k(base) = g(u_j(base)) = g(j) = k.
			transversal[k] = g.Compose(uj)
			orbit = append(orbit, k)
			queue = append(queue, k)
		}
	}

	return orbit, transversal
}

// schreierGenerators returns the Schreier generators of Stab_H(base), the
// pointwise stabilizer of base within H = ⟨gens⟩, using the orbit and
// transversal computed by computeOrbit for the same base.
//
// For each orbit point j with representative u_j, and each generator g,
// s = u_{g(j)}⁻¹ ∘ g ∘ u_j fixes base: s(base) = u_{g(j)}⁻¹(g(u_j(base)))
// = u_{g(j)}⁻¹(g(j)) = base, since u_{g(j)}(base) = g(j) by construction.
// Because gens already fix every earlier base point, so do u_j, u_{g(j)}
// and therefore s — the level's new generators automatically satisfy
// spec §4.3 step 3's "filtered to those fixing 0..i".
//
// Identity results and structural duplicates are dropped to keep the
// next level's generator set small.
//
// Complexity: O(|orbit| · len(gens)).
func schreierGenerators(gens []perm.Permutation, orbit []int, transversal map[int]perm.Permutation) []perm.Permutation {
	seen := make(map[string]bool)
	var result []perm.Permutation

	for _, j := range orbit {
		uj := transversal[j]
		for _, g := range gens {
			k := g.At(j)
			uk := transversal[k]
			s := uk.Inverse().Compose(g).Compose(uj)
			if s.IsIdentity() {
				continue
			}
			key := s.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, s)
		}
	}

	return result
}
