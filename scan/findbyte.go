package scan

import "github.com/striderio/strider/vec"

// FindByte returns the index of the first occurrence of target in buf,
// honoring C strchr semantics: the scan stops at the first NUL byte, and
// searching for NUL finds the terminator itself. Returns -1 when target
// does not occur before the terminator (or before len(buf) when no
// terminator exists). Not-found is an ordinary result, never an error.
func FindByte(buf []byte, target byte) int {
	if wide {
		return findByteKernel(buf, target, vec.Width256, vec.Load256Aligned, vec.Broadcast256)
	}
	return findByteKernel(buf, target, vec.Width128, vec.Load128Aligned, vec.Broadcast128)
}

// IndexByte returns the index of the first occurrence of target in buf, or
// -1 if target is not present. Unlike FindByte it is purely length-bounded:
// NUL bytes have no special meaning.
func IndexByte(buf []byte, target byte) int {
	if wide {
		return indexByteKernel(buf, target, vec.Width256, vec.Load256Aligned, vec.Broadcast256)
	}
	return indexByteKernel(buf, target, vec.Width128, vec.Load128Aligned, vec.Broadcast128)
}

// findByteRef is the scalar reference for FindByte. The vectorized kernels
// must return an identical index for every input.
func findByteRef(buf []byte, target byte) int {
	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case target: // matches the terminator too when target is NUL
			return i
		case 0:
			return -1
		}
	}
	return -1
}

// findByteKernel scans buf in width-sized aligned chunks, computing a
// terminator mask and a target mask per chunk. When a terminator appears in
// a chunk, the target only wins if its first position is strictly before
// the terminator's.
func findByteKernel[V lanes[V]](buf []byte, target byte, width int, load func([]byte) V, broadcast func(byte) V) int {
	n := len(buf)
	prefix := alignPrefix(buf, width)
	for i := 0; i < prefix; i++ {
		switch buf[i] {
		case target:
			return i
		case 0:
			return -1
		}
	}

	tv := broadcast(target)
	zv := broadcast(0)
	i := prefix
	for ; i+width <= n; i += width {
		data := load(buf[i : i+width])
		zm := data.CmpEq(zv).Movemask()
		tm := data.CmpEq(tv).Movemask()
		if zm != 0 {
			zpos := zm.FirstSet()
			if tm != 0 {
				if tpos := tm.FirstSet(); tpos < zpos {
					return i + tpos
				}
			}
			if target == 0 {
				return i + zpos
			}
			return -1
		}
		if tm != 0 {
			return i + tm.FirstSet()
		}
	}

	for ; i < n; i++ {
		switch buf[i] {
		case target:
			return i
		case 0:
			return -1
		}
	}
	return -1
}

// indexByteKernel is findByteKernel without the terminator sentinel: one
// mask per chunk, first set bit wins.
func indexByteKernel[V lanes[V]](buf []byte, target byte, width int, load func([]byte) V, broadcast func(byte) V) int {
	n := len(buf)
	prefix := alignPrefix(buf, width)
	for i := 0; i < prefix; i++ {
		if buf[i] == target {
			return i
		}
	}

	tv := broadcast(target)
	i := prefix
	for ; i+width <= n; i += width {
		if m := load(buf[i : i+width]).CmpEq(tv).Movemask(); m != 0 {
			return i + m.FirstSet()
		}
	}

	for ; i < n; i++ {
		if buf[i] == target {
			return i
		}
	}
	return -1
}
