// Package vec provides fixed-width byte-vector value types with uniform
// load, store, broadcast, compare, and mask-extraction operations,
// independent of the instruction set backing them.
//
// Two widths exist: Vec128 (16 lanes) and Vec256 (32 lanes, two Vec128
// halves in lockstep). Two backends implement Vec128, selected at build
// time: the default packs lanes into 64-bit words and operates on them
// SWAR-style; the purego build keeps lanes in a plain byte array and loops.
// Both backends are observationally identical for every operation.
//
// Aligned load/store variants carry a caller obligation, not a runtime
// check: the slice's first byte must sit on a boundary of the vector's
// width. Algorithms built on this package partition buffers into an
// unaligned prefix, an aligned body, and a tail so that only aligned
// addresses ever reach the aligned entry points.
package vec

import "unsafe"

const (
	// Width128 is the byte width of a Vec128 chunk.
	Width128 = 16
	// Width256 is the byte width of a Vec256 chunk.
	Width256 = 32
)

// IsAligned reports whether p sits on an align-byte boundary.
// align must be a power of two; the result is undefined otherwise.
func IsAligned(p unsafe.Pointer, align uintptr) bool {
	return uintptr(p)&(align-1) == 0
}
