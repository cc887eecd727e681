// Package symmetry declares the four shapes of slot-symmetry generator a
// tensor can carry — Symmetric, Antisymmetric, SymmetricPairs, and Cyclic —
// and expands each into the concrete perm.Permutation generators of the
// subgroup it describes (spec §3, §4.2).
//
// Symmetry is a closed sum type rather than an interface hierarchy: one
// Kind field selects the variant, and Generators is the single function
// that maps a variant to permutations. This mirrors spec.md's own design
// note that a class hierarchy buys nothing here since there are exactly
// four shapes and they never grow new behavior independently.
package symmetry
