// File: version.go
// Role: Version information — bp_version.

package ffi

// Version is the static version string bp_version returns. It is not
// owned by the caller (cmd/bpcshared copies this constant into C memory
// once and returns that same pointer on every call; it is not a string
// bp_string_free must release).
const Version = "butlerportugal 1.0.0"
