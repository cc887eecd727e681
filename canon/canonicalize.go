// File: canonicalize.go
// Role: Canonicalize — expand a tensor's attached symmetries into
//       generators, build the stabilizer chain, run the double-coset
//       minimization search level by level, and assemble the resulting
//       canonical tensor (spec §4.4).
// Determinism:
//   - Generator expansion order follows Tensor.Symmetries() attachment
//     order, which fixes SGS transversal tie-breaking, which fixes which
//     surviving candidate is reported first; output is reproducible for
//     identical input.
// Concurrency:
//   - Canonicalize takes no locks; it reads t's immutable snapshot
//     (Indices/Symmetries both already return copies) and returns a new
//     *Tensor, never mutating t.

package canon

import (
	"github.com/katalvlaran/butlerportugal/perm"
	"github.com/katalvlaran/butlerportugal/sgs"
	"github.com/katalvlaran/butlerportugal/symmetry"
	"github.com/katalvlaran/butlerportugal/tensor"
)

// Canonicalize computes the canonical form of t under its attached
// symmetry generators: the lexicographically least index arrangement
// reachable by the generated group, with the coefficient adjusted by the
// sign of the permutation that reaches it. If two group elements reach
// that arrangement with opposite signs, t is identically zero and the
// returned tensor carries coefficient 0 (spec §4.4, §4.6).
//
// Returns ErrNilTensor if t is nil, or the error from
// symmetry.Generators / sgs.Build if t's attached generators are
// malformed.
//
// Complexity: bounded by sgs.Build's O(n²·(n+|gens|)) plus the search's
// own O(n · |C|) per level, where |C| is the live candidate count —
// small in practice for the slot-symmetric groups symmetry.Generators
// produces (spec §5).
func Canonicalize(t *tensor.Tensor) (*tensor.Tensor, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	if t.IsZero() {
		zero := t.Clone()
		return zeroedOut(zero), nil
	}

	rank := t.Rank()
	indices := t.Indices()

	gens, err := expandGenerators(t.Symmetries(), rank)
	if err != nil {
		return nil, err
	}

	canonicalIndices := indices
	sign := int32(1)
	if rank > 0 && len(gens) > 0 {
		chain, err := sgs.Build(gens, rank)
		if err != nil {
			return nil, err
		}
		canonicalIndices, sign, err = search(chain, indices)
		if err != nil {
			return nil, err
		}
	}

	newCoeff, err := scaleCoefficient(t.Coefficient(), sign)
	if err != nil {
		return nil, err
	}

	out, err := tensor.WithCoefficient(t.Name(), canonicalIndices, newCoeff)
	if err != nil {
		return nil, err
	}
	for _, s := range t.Symmetries() {
		if err := out.AddSymmetry(s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// zeroedOut returns t with its coefficient forced to 0, preserving name,
// indices, and symmetries — used when IsZero already detected a repeated
// index under an antisymmetric generator, short-circuiting the search.
func zeroedOut(t *tensor.Tensor) *tensor.Tensor {
	z, err := tensor.WithCoefficient(t.Name(), t.Indices(), 0)
	if err != nil {
		// t.Name() was already non-empty for t to exist; unreachable.
		return t
	}
	for _, s := range t.Symmetries() {
		_ = z.AddSymmetry(s)
	}
	return z
}

// scaleCoefficient multiplies coeff by sign (+1, -1, or 0 for a detected
// sign collapse), reporting ErrCoefficientOverflow rather than wrapping
// silently (spec §7).
func scaleCoefficient(coeff int32, sign int32) (int32, error) {
	product := int64(coeff) * int64(sign)
	if product > int64(1)<<31-1 || product < -(int64(1)<<31) {
		return 0, tensor.ErrCoefficientOverflow
	}
	return int32(product), nil
}

// expandGenerators expands every attached symmetry into permutations on
// {0, ..., rank-1}, concatenating them into a single generating set for
// the tensor's full invariance group.
func expandGenerators(syms []symmetry.Symmetry, rank int) ([]perm.Permutation, error) {
	var gens []perm.Permutation
	for _, s := range syms {
		g, err := s.Generators(rank)
		if err != nil {
			return nil, err
		}
		gens = append(gens, g...)
	}
	return gens, nil
}

// search runs the Butler-Portugal double-coset minimization over chain's
// stabilizer levels, returning the canonical index arrangement and the
// accumulated sign (0 if the surviving candidates disagree on sign, or if
// the group contains the identity with sign -1, i.e. a sign collapse to
// zero).
func search(chain *sgs.SGS, indices []tensor.Index) ([]tensor.Index, int32, error) {
	n := chain.Degree
	if n == 0 {
		return indices, 1, nil
	}

	candidates := initialCandidates(chain.Levels[0])

	for i := 0; i < n; i++ {
		minIndex := selectMinimum(candidates, indices, i)
		survivors := filterSurvivors(candidates, indices, i, minIndex)
		if len(survivors) == 0 {
			return nil, 0, ErrNoSurvivors
		}

		if i == n-1 {
			candidates = survivors
			break
		}
		candidates = dedupe(extendCandidates(survivors, chain.Levels[i+1]))
	}

	canonicalIndices := applyCandidate(candidates[0], indices)
	// The last level's generators fix every point, so any of them that is
	// not the +1 identity is the identity with sign -1: the group maps the
	// tensor to its own negative. The transversals never carry it.
	for _, g := range chain.Levels[n-1].Generators {
		if !g.IsIdentity() {
			return canonicalIndices, 0, nil
		}
	}
	sign := candidates[0].Sign()
	for _, c := range candidates[1:] {
		if c.Sign() != sign {
			return canonicalIndices, 0, nil
		}
	}
	return canonicalIndices, int32(sign), nil
}

// applyCandidate renders the full index arrangement a surviving candidate
// produces: result[i] = indices[h(i)], matching placedIndex's per-slot
// definition.
func applyCandidate(h perm.Permutation, indices []tensor.Index) []tensor.Index {
	out := make([]tensor.Index, len(indices))
	for i := range out {
		out[i] = indices[h.At(i)]
	}
	return out
}

// initialCandidates seeds the search with level 0's full transversal, in
// orbit discovery order for deterministic iteration.
func initialCandidates(level sgs.Level) []perm.Permutation {
	out := make([]perm.Permutation, 0, len(level.Orbit))
	for _, j := range level.Orbit {
		out = append(out, level.Transversal[j])
	}
	return out
}

// selectMinimum returns the least index, under tensor.Index.Compare, that
// any candidate in c places at slot i. Compare's position tiebreak makes
// this selection a deterministic single value even when several
// candidates place abstractly-identical indices there.
func selectMinimum(c []perm.Permutation, indices []tensor.Index, slot int) tensor.Index {
	min := placedIndex(c[0], indices, slot)
	for _, cand := range c[1:] {
		cur := placedIndex(cand, indices, slot)
		if cur.Compare(min) < 0 {
			min = cur
		}
	}
	return min
}

// filterSurvivors keeps every candidate whose placed index at slot is the
// same abstract index as min (tensor.Index.Equal, ignoring position) —
// see doc.go's "Minimum-selection vs. survivor equality" note for why
// this must be Equal rather than Compare==0.
func filterSurvivors(c []perm.Permutation, indices []tensor.Index, slot int, min tensor.Index) []perm.Permutation {
	var survivors []perm.Permutation
	for _, cand := range c {
		if placedIndex(cand, indices, slot).Equal(min) {
			survivors = append(survivors, cand)
		}
	}
	return survivors
}

// extendCandidates builds the next level's candidate set by composing
// each surviving candidate with every representative of the next level's
// transversal: C_next = {c ∘ u | c ∈ survivors, u ∈ U_{i+1}}. u is
// composed on the right (innermost) because every candidate h is used
// directly as h.At(slot) (see placedIndex): h = u_0 ∘ u_1 ∘ ... ∘
// u_{n-1} with u_0 outermost means h(0) = u_0(0) regardless of which
// u_1, ..., u_{n-1} follow (they lie in Stab(0) and so leave point 0
// fixed before u_0 is applied), and inductively h(l) for l <= i stays
// invariant under any choice made at levels deeper than i (spec §4.4).
func extendCandidates(survivors []perm.Permutation, next sgs.Level) []perm.Permutation {
	out := make([]perm.Permutation, 0, len(survivors)*len(next.Orbit))
	for _, c := range survivors {
		for _, j := range next.Orbit {
			u := next.Transversal[j]
			out = append(out, c.Compose(u))
		}
	}
	return out
}

// placedIndex returns the index that candidate h places at slot, i.e.
// indices[h(slot)]. A candidate is read directly (not inverted): h is
// built from transversal representatives so that h(l) is exactly the
// branching choice committed to at level l, for every l <= the level
// currently being processed (see extendCandidates).
func placedIndex(h perm.Permutation, indices []tensor.Index, slot int) tensor.Index {
	return indices[h.At(slot)]
}

// dedupe removes structurally duplicate permutations (same image and
// sign), keeping first-seen order, to bound candidate-set growth across
// levels.
func dedupe(perms []perm.Permutation) []perm.Permutation {
	seen := make(map[string]bool, len(perms))
	out := make([]perm.Permutation, 0, len(perms))
	for _, p := range perms {
		key := p.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
