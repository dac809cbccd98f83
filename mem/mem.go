// Package mem provides aligned buffer allocation and alignment arithmetic
// for vector-width memory access. Plain byte slices serve as the non-owning
// (pointer, length) view everywhere in this module; nothing here copies or
// owns caller data beyond the backing array it allocates itself.
package mem

import "unsafe"

// AlignedBuffer is a byte buffer whose usable window starts on a chosen
// power-of-two boundary. The backing slice over-allocates by up to align-1
// bytes and pins the window in place.
type AlignedBuffer struct {
	backing []byte
	window  []byte
}

// NewAlignedBuffer allocates size bytes whose first byte sits on an align
// boundary. align must be a power of two.
func NewAlignedBuffer(size, align int) *AlignedBuffer {
	backing := make([]byte, size+align-1)
	if len(backing) == 0 {
		return &AlignedBuffer{}
	}
	addr := uintptr(unsafe.Pointer(&backing[0]))
	off := int(AlignUp(addr, uintptr(align)) - addr)
	return &AlignedBuffer{
		backing: backing,
		window:  backing[off : off+size],
	}
}

// Bytes returns the aligned window. Its first byte is align-aligned for the
// lifetime of the buffer.
func (b *AlignedBuffer) Bytes() []byte { return b.window }

// Len returns the window length.
func (b *AlignedBuffer) Len() int { return len(b.window) }

// AlignUp rounds addr up to the next multiple of align. align must be a
// power of two.
func AlignUp(addr, align uintptr) uintptr {
	return (addr + align - 1) &^ (align - 1)
}

// PrefixLen returns how many bytes precede the next align boundary starting
// from p: 0 when p is already aligned, at most align-1 otherwise. align
// must be a power of two.
func PrefixLen(p unsafe.Pointer, align uintptr) int {
	return int((align - uintptr(p)&(align-1)) & (align - 1))
}
