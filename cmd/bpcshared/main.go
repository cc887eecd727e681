// File: main.go
// Role: C ABI entry point — one //export wrapper per bp_* function in
//       original_source/include/butler_portugal.h, each a thin argument
//       marshaller delegating straight into ffi (spec §6).
//
// Handles cross the boundary as uintptr_t rather than void*: this is
// runtime/cgo.Handle's own documented convention (a Handle is not a
// pointer into Go memory and must never be dereferenced by C), and it
// keeps every wrapper here a one-line conversion instead of an
// unsafe.Pointer round-trip.
//
// Build with: go build -buildmode=c-shared -o libbutlerportugal.so ./cmd/bpcshared

package main

/*
#include <stddef.h>
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/katalvlaran/butlerportugal/ffi"
	log "github.com/sirupsen/logrus"
)

func sizeTSliceToInts(p *C.size_t, n C.size_t) []int {
	if p == nil || n == 0 {
		return nil
	}
	src := unsafe.Slice(p, int(n))
	out := make([]int, int(n))
	for i, v := range src {
		out[i] = int(v)
	}
	return out
}

// handleSliceToGo converts a C array of handles to a Go slice. A NULL
// pointer paired with n == 0 is the empty-indices case and yields a nil
// slice; a NULL pointer with n > 0 is an inconsistent count, reported
// back to the caller via ok=false so bp_tensor_new/bp_tensor_with_coefficient
// reject it rather than silently building a rank-0 tensor (spec §6, §7).
func handleSliceToGo(p *C.uintptr_t, n C.size_t) (out []cgo.Handle, ok bool) {
	if n == 0 {
		return nil, true
	}
	if p == nil {
		return nil, false
	}
	src := unsafe.Slice(p, int(n))
	out = make([]cgo.Handle, int(n))
	for i, v := range src {
		out[i] = cgo.Handle(v)
	}
	return out, true
}

/* -------------------------------------------------------------------- */
/* TensorIndex Functions                                                 */
/* -------------------------------------------------------------------- */

//export bp_index_new
func bp_index_new(name *C.char, position C.size_t) C.uintptr_t {
	h, _ := ffi.IndexNew(C.GoString(name), int(position))
	return C.uintptr_t(h)
}

//export bp_index_contravariant
func bp_index_contravariant(name *C.char, position C.size_t) C.uintptr_t {
	h, _ := ffi.IndexContravariant(C.GoString(name), int(position))
	return C.uintptr_t(h)
}

//export bp_index_free
func bp_index_free(index C.uintptr_t) {
	ffi.IndexFree(cgo.Handle(index))
}

//export bp_index_clone
func bp_index_clone(index C.uintptr_t) C.uintptr_t {
	h, _ := ffi.IndexClone(cgo.Handle(index))
	return C.uintptr_t(h)
}

/* -------------------------------------------------------------------- */
/* Symmetry Functions                                                    */
/* -------------------------------------------------------------------- */

//export bp_symmetry_symmetric
func bp_symmetry_symmetric(indices *C.size_t, length C.size_t) C.uintptr_t {
	return C.uintptr_t(ffi.SymmetrySymmetric(sizeTSliceToInts(indices, length)))
}

//export bp_symmetry_antisymmetric
func bp_symmetry_antisymmetric(indices *C.size_t, length C.size_t) C.uintptr_t {
	return C.uintptr_t(ffi.SymmetryAntisymmetric(sizeTSliceToInts(indices, length)))
}

//export bp_symmetry_symmetric_pairs
func bp_symmetry_symmetric_pairs(pairs *C.size_t, length C.size_t) C.uintptr_t {
	h, _ := ffi.SymmetrySymmetricPairs(sizeTSliceToInts(pairs, 2*length))
	return C.uintptr_t(h)
}

//export bp_symmetry_cyclic
func bp_symmetry_cyclic(indices *C.size_t, length C.size_t) C.uintptr_t {
	return C.uintptr_t(ffi.SymmetryCyclic(sizeTSliceToInts(indices, length)))
}

//export bp_symmetry_free
func bp_symmetry_free(symmetry C.uintptr_t) {
	ffi.SymmetryFree(cgo.Handle(symmetry))
}

//export bp_symmetry_clone
func bp_symmetry_clone(symmetry C.uintptr_t) C.uintptr_t {
	h, _ := ffi.SymmetryClone(cgo.Handle(symmetry))
	return C.uintptr_t(h)
}

/* -------------------------------------------------------------------- */
/* Tensor Functions                                                      */
/* -------------------------------------------------------------------- */

//export bp_tensor_new
func bp_tensor_new(name *C.char, indices *C.uintptr_t, numIndices C.size_t) C.uintptr_t {
	handles, ok := handleSliceToGo(indices, numIndices)
	if !ok {
		return 0
	}
	h, _ := ffi.TensorNew(C.GoString(name), handles)
	return C.uintptr_t(h)
}

//export bp_tensor_with_coefficient
func bp_tensor_with_coefficient(name *C.char, indices *C.uintptr_t, numIndices C.size_t, coefficient C.int32_t) C.uintptr_t {
	handles, ok := handleSliceToGo(indices, numIndices)
	if !ok {
		return 0
	}
	h, _ := ffi.TensorWithCoefficient(C.GoString(name), handles, int32(coefficient))
	return C.uintptr_t(h)
}

//export bp_tensor_free
func bp_tensor_free(tensor C.uintptr_t) {
	ffi.TensorFree(cgo.Handle(tensor))
}

//export bp_tensor_clone
func bp_tensor_clone(tensor C.uintptr_t) C.uintptr_t {
	h, _ := ffi.TensorClone(cgo.Handle(tensor))
	return C.uintptr_t(h)
}

//export bp_tensor_add_symmetry
func bp_tensor_add_symmetry(tensor C.uintptr_t, symmetry C.uintptr_t) C.int {
	rc := ffi.TensorAddSymmetry(cgo.Handle(tensor), cgo.Handle(symmetry))
	if rc != ffi.Success {
		log.WithField("result", rc.String()).Warn("bp_tensor_add_symmetry failed")
	}
	return C.int(rc)
}

//export bp_tensor_rank
func bp_tensor_rank(tensor C.uintptr_t) C.size_t {
	return C.size_t(ffi.TensorRank(cgo.Handle(tensor)))
}

//export bp_tensor_coefficient
func bp_tensor_coefficient(tensor C.uintptr_t) C.int32_t {
	return C.int32_t(ffi.TensorCoefficient(cgo.Handle(tensor)))
}

//export bp_tensor_is_zero
func bp_tensor_is_zero(tensor C.uintptr_t) C.int {
	if ffi.TensorIsZero(cgo.Handle(tensor)) {
		return 1
	}
	return 0
}

//export bp_tensor_to_string
func bp_tensor_to_string(tensor C.uintptr_t) *C.char {
	s, rc := ffi.TensorString(cgo.Handle(tensor))
	if rc != ffi.Success {
		return nil
	}
	return C.CString(s)
}

//export bp_string_free
func bp_string_free(s *C.char) {
	if s == nil {
		return
	}
	C.free(unsafe.Pointer(s))
}

/* -------------------------------------------------------------------- */
/* Canonicalization Functions                                           */
/* -------------------------------------------------------------------- */

//export bp_canonicalize
func bp_canonicalize(tensor C.uintptr_t, errorOut *C.int) C.uintptr_t {
	h, rc := ffi.Canonicalize(cgo.Handle(tensor))
	if rc != ffi.Success {
		log.WithField("result", rc.String()).Warn("bp_canonicalize failed")
	} else {
		log.Debug("bp_canonicalize succeeded")
	}
	if errorOut != nil {
		*errorOut = C.int(rc)
	}
	return C.uintptr_t(h)
}

/* -------------------------------------------------------------------- */
/* Version Information                                                  */
/* -------------------------------------------------------------------- */

// versionCString is allocated once and never freed, so bp_version hands
// back the same static string on every call.
var versionCString = C.CString(ffi.Version)

//export bp_version
func bp_version() *C.char {
	return versionCString
}

func main() {}
