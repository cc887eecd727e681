// File: result.go
// Role: ResultCode — the Go mirror of the BPResult enum in
//       original_source/include/butler_portugal.h.

package ffi

// ResultCode mirrors the C ABI's BPResult enum exactly, value for value,
// so cmd/bpcshared can hand one straight across as a C int with no
// translation table.
type ResultCode int32

const (
	// Success indicates the call completed normally.
	Success ResultCode = 0
	// NullPointer indicates a required handle was the zero Handle (C
	// NULL) or failed to resolve to the expected Go type.
	NullPointer ResultCode = 1
	// InvalidArgument indicates a non-nil argument failed validation
	// (an out-of-range slot, an empty name, a malformed pair list, an
	// overflowing coefficient product).
	InvalidArgument ResultCode = 2
	// CanonicalizationError indicates canon.Canonicalize returned an
	// error other than a nil-tensor or validation failure (a malformed
	// stabilizer chain, an unreachable search state).
	CanonicalizationError ResultCode = 3
	// AllocationError indicates memory exhaustion; reserved for parity
	// with the C ABI's BPResult enum, not currently returned by this
	// implementation.
	AllocationError ResultCode = 4
)

// String renders the ResultCode's C enumerator name.
func (r ResultCode) String() string {
	switch r {
	case Success:
		return "BP_SUCCESS"
	case NullPointer:
		return "BP_NULL_POINTER"
	case InvalidArgument:
		return "BP_INVALID_ARGUMENT"
	case CanonicalizationError:
		return "BP_CANONICALIZATION_ERROR"
	case AllocationError:
		return "BP_ALLOCATION_ERROR"
	default:
		return "BP_UNKNOWN"
	}
}
