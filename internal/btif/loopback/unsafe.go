package loopback

import "unsafe"

func unsafeBytes(p *byte, n uintptr) []byte { return unsafe.Slice(p, n) }

func unsafeElements[T any](p *T, n uintptr) []T { return unsafe.Slice(p, n) }
