// Package tensor defines the Index and Tensor value types: a named index
// with variance and slot position, and a named tensor carrying an ordered
// index list, an integer coefficient, and its attached symmetry
// generators (spec §3).
//
// Both types follow core.Vertex/core.Edge's value-object shape: exported
// constructors, no shared mutable state, and deep copies on Clone. Unlike
// core.Graph, Tensor needs no locking — spec §5 makes every operation
// synchronous and single-threaded, with exclusive access required only
// while mutating (AddSymmetry), which callers must arrange themselves.
package tensor
