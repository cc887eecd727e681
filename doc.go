// Package butlerportugal canonicalizes abstract tensor expressions under
// slot symmetries using the Butler-Portugal algorithm.
//
// Given a named tensor with an ordered list of indices and a set of
// declared slot symmetries (symmetric, antisymmetric, symmetric-pairs,
// cyclic), canon.Canonicalize produces the lexicographically least
// representative of the index arrangement's orbit under the declared
// symmetry group, together with the accumulated sign, and detects when
// the tensor is identically zero.
//
// Everything is organized under focused subpackages:
//
//	perm/      — permutations on {0..n-1} carrying a +/-1 sign
//	symmetry/  — tagged symmetry generators and their expansion to permutations
//	sgs/       — strong generating set / stabilizer chain construction
//	canon/     — the Butler-Portugal double-coset minimization search
//	tensor/    — Index and Tensor value types, rendering, eager zero detection
//	ffi/       — the opaque-handle object model backing the C ABI
//
// cmd/bpctl builds a CLI front-end over the library; cmd/bpcshared builds
// a -buildmode=c-shared library exposing the bp_* C entry points.
//
// All core types are value-semantic and hold no process-wide state; see
// each subpackage's doc.go for its concurrency contract.
package butlerportugal
