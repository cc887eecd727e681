// Package perm implements signed permutations on {0, ..., n-1}.
//
// A Permutation pairs a bijection, stored as a one-line array image, with
// a +1/-1 sign. Composition multiplies signs, so a chain of transpositions
// built from antisymmetric generators carries its accumulated parity for
// free; sgs and canon rely on this to detect the sign-collapse that marks
// a tensor as identically zero.
//
// Permutation is a value type: every operation returns a new Permutation
// and never mutates its receiver or arguments. There is no shared mutable
// state, so concurrent reads from multiple goroutines are always safe.
package perm
