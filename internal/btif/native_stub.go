//go:build !btif || !cgo

package btif

// This stub is compiled when the 'btif' build tag (or cgo) is missing, so
// default builds and CI stay cgo-free. The real binding lives in native.go.

// nativeBuilt reports whether this binary carries the cgo binding.
var nativeBuilt = false

// Open fails fast: the native stack is not linked into this build.
func Open() (BluetoothInterface, error) {
	return nil, ErrDependencyUnavailable("native bluetooth support not built (missing 'btif' build tag)")
}

// NativeBuilt reports whether Open can reach a native stack in this build.
func NativeBuilt() bool { return nativeBuilt }
