// Command bpctl is a command-line front-end over the canon/tensor/symmetry
// packages: it loads a tensor and its attached symmetries from a YAML
// description, runs the Butler-Portugal search, and prints the input
// alongside its canonical form (spec §6, ambient stack).
//
// bpctl talks to the library directly as a Go import, not through ffi —
// ffi and cmd/bpcshared exist for non-Go callers crossing a C ABI.
package main
