// File: index.go
// Role: Index value type, variance, the total order used by the
//       canonicalizer (spec §4.4), and the abstract-index equality used
//       for eager zero detection (spec §4.6).

package tensor

// Variance distinguishes a covariant (subscript) index from a
// contravariant (superscript) one.
type Variance int

const (
	// Covariant indices render as subscripts and sort before
	// Contravariant ones in the index total order.
	Covariant Variance = iota
	// Contravariant indices render as superscripts.
	Contravariant
)

// String renders v as "covariant" or "contravariant".
func (v Variance) String() string {
	if v == Contravariant {
		return "contravariant"
	}
	return "covariant"
}

// Index is a (name, variance, position) value object. Position is a
// caller-supplied hint carried through unchanged; the authoritative slot
// is always the Index's position within a Tensor's index list (spec §9,
// open question (a)) — Position is consulted only as the final tiebreaker
// in Compare.
type Index struct {
	name     string
	variance Variance
	position int
}

// NewIndex constructs a covariant Index.
func NewIndex(name string, position int) Index {
	return Index{name: name, variance: Covariant, position: position}
}

// NewContravariantIndex constructs a contravariant Index.
func NewContravariantIndex(name string, position int) Index {
	return Index{name: name, variance: Contravariant, position: position}
}

// Name returns the index's name.
func (idx Index) Name() string { return idx.name }

// Variance returns the index's variance.
func (idx Index) Variance() Variance { return idx.variance }

// Position returns the caller-supplied position hint.
func (idx Index) Position() int { return idx.position }

// Clone returns an independent copy of idx. Index holds no pointers, so
// this is equivalent to a plain copy; it exists for API symmetry with
// perm.Permutation and symmetry.Symmetry (spec §3 Ownership).
func (idx Index) Clone() Index { return idx }

// Equal reports whether idx and other are the same abstract index: same
// name and same variance. Position is deliberately excluded (spec §3:
// "Two indices compare equal as 'same abstract index' iff name and
// variance match").
func (idx Index) Equal(other Index) bool {
	return idx.name == other.name && idx.variance == other.variance
}

// Compare orders idx against other by (variance, name, position),
// lexicographically, with Covariant < Contravariant (spec §4.4). It
// returns a negative number, zero, or a positive number as idx is less
// than, equal to, or greater than other.
func (idx Index) Compare(other Index) int {
	if idx.variance != other.variance {
		return int(idx.variance) - int(other.variance)
	}
	if idx.name != other.name {
		if idx.name < other.name {
			return -1
		}
		return 1
	}
	return idx.position - other.position
}
