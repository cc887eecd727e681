// File: symmetry.go
// Role: The Symmetry sum type, its four constructors, and value-object
//       contracts (Clone, Equal).
// Determinism:
//   - Slot/pair order is preserved exactly as supplied; it determines
//     generator order and therefore SGS transversal tie-breaking (§4.3).

package symmetry

// Kind selects which of the four symmetry shapes a Symmetry describes.
type Kind int

const (
	// Symmetric generates the full symmetric group on its slots.
	Symmetric Kind = iota
	// Antisymmetric generates the full symmetric group on its slots,
	// with every transposition contributing sign -1.
	Antisymmetric
	// SymmetricPairs generates the group exchanging whole slot-pairs as
	// blocks.
	SymmetricPairs
	// Cyclic generates the cyclic group of the single shift on its slots.
	Cyclic
)

// String returns a short human-readable name for k.
func (k Kind) String() string {
	switch k {
	case Symmetric:
		return "Symmetric"
	case Antisymmetric:
		return "Antisymmetric"
	case SymmetricPairs:
		return "SymmetricPairs"
	case Cyclic:
		return "Cyclic"
	default:
		return "Unknown"
	}
}

// Symmetry is a tagged, closed description of a slot-permutation subgroup
// under which a tensor is invariant up to a sign (spec §3).
//
// Symmetry is a value object: constructors copy their input slices, and
// every accessor returns a fresh copy, so a Symmetry cannot be mutated
// through an aliased backing array.
type Symmetry struct {
	kind  Kind
	slots []int    // Symmetric, Antisymmetric, Cyclic
	pairs [][2]int // SymmetricPairs
}

// NewSymmetric declares full symmetry under any permutation of slots.
func NewSymmetric(slots []int) Symmetry {
	return Symmetry{kind: Symmetric, slots: cloneInts(slots)}
}

// NewAntisymmetric declares antisymmetry under any permutation of slots:
// each transposition flips the sign.
func NewAntisymmetric(slots []int) Symmetry {
	return Symmetry{kind: Antisymmetric, slots: cloneInts(slots)}
}

// NewSymmetricPairs declares symmetry under exchanging whole adjacent
// slot-pairs as blocks, e.g. the Riemann tensor's R_{abcd} = R_{cdab}.
func NewSymmetricPairs(pairs [][2]int) Symmetry {
	return Symmetry{kind: SymmetricPairs, pairs: clonePairs(pairs)}
}

// NewCyclic declares symmetry under the single cyclic shift of slots.
func NewCyclic(slots []int) Symmetry {
	return Symmetry{kind: Cyclic, slots: cloneInts(slots)}
}

// Kind reports which of the four shapes s is.
func (s Symmetry) Kind() Kind { return s.kind }

// Slots returns a copy of the slot list for Symmetric, Antisymmetric, and
// Cyclic symmetries; it is nil for SymmetricPairs.
func (s Symmetry) Slots() []int { return cloneInts(s.slots) }

// Pairs returns a copy of the pair list for SymmetricPairs symmetries; it
// is nil for every other Kind.
func (s Symmetry) Pairs() [][2]int { return clonePairs(s.pairs) }

// Clone returns an independent copy of s. Because Symmetry already never
// exposes its backing arrays, Clone is equivalent to a plain copy, but is
// provided for API symmetry with perm and tensor (spec §3 Ownership).
func (s Symmetry) Clone() Symmetry {
	return Symmetry{kind: s.kind, slots: cloneInts(s.slots), pairs: clonePairs(s.pairs)}
}

// Equal reports whether s and other describe the identical generator
// (same kind, same slot/pair sequence in the same order). Tensor.AddSymmetry
// uses Equal to make re-attaching a symmetry a no-op (spec §9, open
// question (b)).
func (s Symmetry) Equal(other Symmetry) bool {
	if s.kind != other.kind {
		return false
	}
	if len(s.slots) != len(other.slots) || len(s.pairs) != len(other.pairs) {
		return false
	}
	for i, v := range s.slots {
		if other.slots[i] != v {
			return false
		}
	}
	for i, v := range s.pairs {
		if other.pairs[i] != v {
			return false
		}
	}
	return true
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	cp := make([]int, len(s))
	copy(cp, s)
	return cp
}

func clonePairs(p [][2]int) [][2]int {
	if p == nil {
		return nil
	}
	cp := make([][2]int, len(p))
	copy(cp, p)
	return cp
}
