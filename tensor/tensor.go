// File: tensor.go
// Role: Tensor value type — construction, nil-safe queries, AddSymmetry,
//       Clone, String rendering, and the eager zero predicate (spec §3,
//       §4.5, §4.6).
// Determinism:
//   - Rendering groups indices by variance (all covariant, then all
//     contravariant), preserving each group's relative order.
// Concurrency:
//   - Value-semantic; mutation (AddSymmetry) requires exclusive access
//     that callers must arrange (spec §5). No internal locks.

package tensor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/butlerportugal/symmetry"
)

// Tensor is a named abstract-index tensor: an ordered index list, an
// integer coefficient, and its attached symmetry generators.
//
// coefficient == 0 iff the tensor is identically zero; once a Tensor
// becomes zero (by construction or by canonicalization), Clone preserves
// that (spec §3).
type Tensor struct {
	name        string
	indices     []Index
	coefficient int32
	symmetries  []symmetry.Symmetry
}

// New constructs a Tensor with coefficient 1.
//
// Returns ErrEmptyName if name is empty. indices is copied; the caller
// retains ownership of its backing slice (spec §3 Ownership).
func New(name string, indices []Index) (*Tensor, error) {
	return WithCoefficient(name, indices, 1)
}

// WithCoefficient constructs a Tensor with an explicit coefficient.
//
// Returns ErrEmptyName if name is empty.
func WithCoefficient(name string, indices []Index, coefficient int32) (*Tensor, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Tensor{
		name:        name,
		indices:     cloneIndices(indices),
		coefficient: coefficient,
	}, nil
}

// Name returns the tensor's name, or "" if t is nil.
func (t *Tensor) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Rank returns the number of indices, or 0 if t is nil (spec §6).
func (t *Tensor) Rank() int {
	if t == nil {
		return 0
	}
	return len(t.indices)
}

// Coefficient returns the signed coefficient, or 0 if t is nil (spec §6).
func (t *Tensor) Coefficient() int32 {
	if t == nil {
		return 0
	}
	return t.coefficient
}

// Indices returns a copy of the index list.
func (t *Tensor) Indices() []Index {
	if t == nil {
		return nil
	}
	return cloneIndices(t.indices)
}

// Symmetries returns a copy of the attached symmetry generators, in
// attachment order.
func (t *Tensor) Symmetries() []symmetry.Symmetry {
	if t == nil {
		return nil
	}
	out := make([]symmetry.Symmetry, len(t.symmetries))
	for i, s := range t.symmetries {
		out[i] = s.Clone()
	}
	return out
}

// AddSymmetry attaches sym to t's generator list. Attaching a symmetry
// structurally equal (symmetry.Symmetry.Equal) to one already present is
// a no-op, making repeated attachment idempotent (spec §9, open question
// (b)).
//
// Returns ErrNilTensor if t is nil.
func (t *Tensor) AddSymmetry(sym symmetry.Symmetry) error {
	if t == nil {
		return ErrNilTensor
	}
	for _, existing := range t.symmetries {
		if existing.Equal(sym) {
			return nil
		}
	}
	t.symmetries = append(t.symmetries, sym.Clone())
	return nil
}

// IsZero reports whether t is identically zero: either its coefficient is
// already 0, or an attached Antisymmetric generator has two slots whose
// indices are the same abstract index (spec §4.6) — the classic
// A_{aa} = 0 case, detected without running the full canonicalizer.
func (t *Tensor) IsZero() bool {
	if t == nil {
		return true
	}
	if t.coefficient == 0 {
		return true
	}
	for _, s := range t.symmetries {
		if s.Kind() != symmetry.Antisymmetric {
			continue
		}
		slots := s.Slots()
		for i := 0; i < len(slots); i++ {
			for j := i + 1; j < len(slots); j++ {
				a, b := slots[i], slots[j]
				if a < 0 || a >= len(t.indices) || b < 0 || b >= len(t.indices) {
					continue
				}
				if t.indices[a].Equal(t.indices[b]) {
					return true
				}
			}
		}
	}
	return false
}

// Clone returns a deep, independent copy of t.
func (t *Tensor) Clone() *Tensor {
	if t == nil {
		return nil
	}
	return &Tensor{
		name:        t.name,
		indices:     cloneIndices(t.indices),
		coefficient: t.coefficient,
		symmetries:  t.Symmetries(),
	}
}

// String renders t as "coeff·Name_{i1 i2 ...}^{j1 j2 ...}", omitting the
// coefficient when it is 1, rendering a leading "-" when it is -1, and
// collapsing the whole expression to "0" when t is zero (spec §4.5).
// Covariant indices are grouped into the subscript braces and
// contravariant indices into the superscript braces, each group keeping
// its original relative order; an empty group's braces are omitted.
func (t *Tensor) String() string {
	if t == nil || t.IsZero() {
		return "0"
	}

	var sub, sup []string
	for _, idx := range t.indices {
		if idx.Variance() == Covariant {
			sub = append(sub, idx.Name())
		} else {
			sup = append(sup, idx.Name())
		}
	}

	var b strings.Builder
	switch t.coefficient {
	case 1:
		// omitted
	case -1:
		b.WriteByte('-')
	default:
		b.WriteString(strconv.FormatInt(int64(t.coefficient), 10))
		b.WriteByte('·') // ·
	}
	b.WriteString(t.name)
	if len(sub) > 0 {
		fmt.Fprintf(&b, "_{%s}", strings.Join(sub, " "))
	}
	if len(sup) > 0 {
		fmt.Fprintf(&b, "^{%s}", strings.Join(sup, " "))
	}
	return b.String()
}

func cloneIndices(indices []Index) []Index {
	if indices == nil {
		return nil
	}
	cp := make([]Index, len(indices))
	copy(cp, indices)
	return cp
}
