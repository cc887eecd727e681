// File: generators.go
// Role: Expansion of each Symmetry variant into concrete perm.Permutation
//       generators on {0, ..., rank-1} (spec §4.2).
// Validation:
//   - Every slot referenced must satisfy 0 <= slot < rank, else
//     ErrSlotOutOfRange; validated up front so downstream SGS/search code
//     never faults on a bad slot (spec §7).

package symmetry

import "github.com/katalvlaran/butlerportugal/perm"

// Generators expands s into the permutations (on the full range
// {0, ..., rank-1}) that generate the subgroup s describes. Slots not
// mentioned by s are fixed.
//
// Complexity: O(rank · k) where k is the number of slots/pairs in s (up
// to k generators, each a fresh image of length rank).
func (s Symmetry) Generators(rank int) ([]perm.Permutation, error) {
	switch s.kind {
	case Symmetric:
		return adjacentTranspositions(rank, s.slots, +1)
	case Antisymmetric:
		return adjacentTranspositions(rank, s.slots, -1)
	case SymmetricPairs:
		return adjacentPairSwaps(rank, s.pairs)
	case Cyclic:
		return cyclicShift(rank, s.slots)
	default:
		return nil, nil
	}
}

// adjacentTranspositions returns the adjacent transpositions within slots
// (in the order slots lists them), each carrying the given sign. These
// generate the full symmetric group on slots (spec §4.2).
func adjacentTranspositions(rank int, slots []int, sign int) ([]perm.Permutation, error) {
	if err := validateSlots(rank, slots); err != nil {
		return nil, err
	}
	gens := make([]perm.Permutation, 0, len(slots))
	for i := 0; i+1 < len(slots); i++ {
		t, err := transposition(rank, slots[i], slots[i+1], sign)
		if err != nil {
			return nil, err
		}
		gens = append(gens, t)
	}
	return gens, nil
}

// adjacentPairSwaps returns, for each adjacent pair of slot-pairs, the
// permutation exchanging the two pairs as blocks — the product of the two
// transpositions matching corresponding pair positions (spec §4.2).
func adjacentPairSwaps(rank int, pairs [][2]int) ([]perm.Permutation, error) {
	flat := make([]int, 0, 2*len(pairs))
	for _, pr := range pairs {
		flat = append(flat, pr[0], pr[1])
	}
	if err := validateSlots(rank, flat); err != nil {
		return nil, err
	}
	gens := make([]perm.Permutation, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i++ {
		a, err := transposition(rank, pairs[i][0], pairs[i+1][0], +1)
		if err != nil {
			return nil, err
		}
		b, err := transposition(rank, pairs[i][1], pairs[i+1][1], +1)
		if err != nil {
			return nil, err
		}
		gens = append(gens, a.Compose(b))
	}
	return gens, nil
}

// cyclicShift returns the single generator sending slots[i] to
// slots[(i+1)%len(slots)], sign +1 (spec §4.2).
func cyclicShift(rank int, slots []int) ([]perm.Permutation, error) {
	if err := validateSlots(rank, slots); err != nil {
		return nil, err
	}
	if len(slots) < 2 {
		return nil, nil
	}
	image := make([]int, rank)
	for i := range image {
		image[i] = i
	}
	for i, s := range slots {
		image[s] = slots[(i+1)%len(slots)]
	}
	p, err := perm.New(image)
	if err != nil {
		return nil, err
	}
	return []perm.Permutation{p}, nil
}

// transposition returns the permutation on {0, ..., rank-1} swapping a and
// b (identity elsewhere) with the given sign.
func transposition(rank, a, b, sign int) (perm.Permutation, error) {
	image := make([]int, rank)
	for i := range image {
		image[i] = i
	}
	image[a], image[b] = b, a
	return perm.NewSigned(image, sign)
}

func validateSlots(rank int, slots []int) error {
	for _, s := range slots {
		if s < 0 || s >= rank {
			return ErrSlotOutOfRange
		}
	}
	return nil
}
