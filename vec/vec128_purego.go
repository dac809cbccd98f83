//go:build purego

package vec

// Vec128 is 16 byte lanes in a plain array; every operation is a scalar
// loop. This backend is the reference the word-packed build is checked
// against, and the only one on platforms where the packed build is
// excluded.
type Vec128 [Width128]byte

// Load128 loads 16 bytes from b at any alignment. len(b) must be at least
// 16.
func Load128(b []byte) Vec128 {
	var v Vec128
	copy(v[:], b[:Width128])
	return v
}

// Load128Aligned loads 16 bytes from b. The caller must ensure &b[0] is
// 16-byte aligned; passing a misaligned slice violates the contract even on
// backends that tolerate it.
func Load128Aligned(b []byte) Vec128 { return Load128(b) }

// Store128 writes the 16 lanes of v to dst at any alignment. len(dst) must
// be at least 16.
func Store128(dst []byte, v Vec128) {
	copy(dst[:Width128], v[:])
}

// Store128Aligned writes the 16 lanes of v to dst. The caller must ensure
// &dst[0] is 16-byte aligned.
func Store128Aligned(dst []byte, v Vec128) { Store128(dst, v) }

// Broadcast128 returns a vector with c in every lane.
func Broadcast128(c byte) Vec128 {
	var v Vec128
	for i := range v {
		v[i] = c
	}
	return v
}

// Zero128 returns the all-zero vector.
func Zero128() Vec128 { return Vec128{} }

// CmpEq returns, per lane, all-one bits where v and w hold the same byte
// and all-zero bits elsewhere.
func (v Vec128) CmpEq(w Vec128) Vec128 {
	var r Vec128
	for i := range v {
		if v[i] == w[i] {
			r[i] = 0xFF
		}
	}
	return r
}

// Movemask collapses the top bit of every lane into a 16-bit Mask, bit i
// from lane i. With no single-instruction extraction available, each lane
// is shifted right so its top bit lands at bit 0, the lanes are spilled to
// addressable memory, and lane i's 0/1 value is OR-ed in at bit position i.
func (v Vec128) Movemask() Mask {
	var spill [Width128]byte
	for i := range v {
		spill[i] = v[i] >> 7
	}
	var m Mask
	for i, b := range spill {
		m |= Mask(b&1) << i
	}
	return m
}
