// Package scan implements accelerated byte search and newline counting
// over caller-owned buffers.
//
// Every function is synchronous, allocation-free, and pure with respect to
// its inputs: it only reads buf[0:len(buf)] and returns results identical
// to a scalar byte-by-byte reference for every input, every buffer length,
// and every alignment of the underlying array. Concurrent calls on shared
// read-only buffers are safe without locking.
//
// Buffers are processed as an unaligned scalar prefix, an aligned
// vector-width body, and a scalar tail. The body width is chosen once at
// startup from the capability descriptor: 32-byte chunks when the wide
// extension is available, 16-byte chunks otherwise.
package scan

import (
	"unsafe"

	"github.com/striderio/strider/cpufeat"
	"github.com/striderio/strider/mem"
	"github.com/striderio/strider/vec"
)

// wide selects the 32-lane kernels for the package-level entry points.
var wide = cpufeat.Get().Wide()

// lanes is the operation set the kernels need from a vector type. Vec128
// and Vec256 both satisfy it, so every kernel is written once and
// instantiated per width.
type lanes[V any] interface {
	CmpEq(V) V
	Movemask() vec.Mask
}

// alignPrefix returns the number of leading bytes of buf before the first
// width-aligned address, capped at len(buf).
func alignPrefix(buf []byte, width int) int {
	if len(buf) == 0 {
		return 0
	}
	p := mem.PrefixLen(unsafe.Pointer(&buf[0]), uintptr(width))
	if p > len(buf) {
		p = len(buf)
	}
	return p
}
