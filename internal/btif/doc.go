// Package btif mirrors the native GATT profile ABI in Go: the fixed-layout
// structures the native stack passes by pointer, the callback tables it
// invokes, and the interface tables (vtables) it exposes.
//
// Everything in this package is foreign-shaped on purpose. Values here may
// alias native memory and must not escape into domain code; package gatt
// copies them into owned event values before they leave a callback.
//
// Build tags and bindings:
//
//   - Native binding: `-tags=btif` with cgo enabled. Files: native.go,
//     gattshim.h. Links against libgattshim.so (the C shim over the
//     platform profile interface).
//   - Without the tag, native_stub.go is compiled and Open returns a
//     dependency-unavailable error, keeping default builds cgo-free.
//   - Subpackage loopback provides an in-process simulated stack used by
//     tests and by `gattmon --backend loopback`.
package btif
