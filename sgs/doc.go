// Package sgs builds a strong generating set (stabilizer chain) for the
// permutation group generated by a set of signed perm.Permutations, along
// the base (0, 1, ..., n-1) (spec §4.3).
//
// At each level i, the orbit of point i under the current stabilizer is
// discovered the same way algorithms/bfs.go discovers graph reachability
// — breadth-first, visited-set guarded — except the "neighbors" of a
// point are its images under the level's generators rather than graph
// edges, and each discovered point carries a Schreier-tree representative
// permutation instead of a predecessor ID. Schreier's lemma then produces
// the generators of the next level's stabilizer.
//
// SGS is immutable after Build; its Levels are read-only value data safe
// to share across goroutines.
package sgs
