// Package ffi is the Go-side object model behind the C ABI described in
// original_source/include/butler_portugal.h: one function per bp_*
// entry point, operating on opaque runtime/cgo.Handle values in place of
// C pointers.
//
// Every exported type (tensor.Index, symmetry.Symmetry, *tensor.Tensor)
// is stored behind a cgo.Handle via lookup/cgo.NewHandle rather than
// returned to C directly, so the C side can only ever hold an opaque
// token — it cannot dereference or copy Go memory (spec §6 Non-goals:
// no direct field access across the boundary).
//
// # NULL-safety
//
// Every function accepting a handle treats the zero Handle (C NULL) and
// any handle that fails its type assertion (a stale, freed, or
// wrong-kind handle) identically: ResultCode NullPointer (or, where the
// C signature has no error-code return, the documented NULL/zero/false
// fallback). lookup recovers from runtime/cgo's own panic-on-invalid-
// handle behavior so a misbehaving C caller cannot crash the process.
package ffi
