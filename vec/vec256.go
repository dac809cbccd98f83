package vec

// Vec256 is 32 byte lanes backed by two Vec128 halves operated in lockstep.
// Lanes 0-15 live in the low half, lanes 16-31 in the high half.
type Vec256 struct{ lo, hi Vec128 }

// Load256 loads 32 bytes from b at any alignment. len(b) must be at least
// 32.
func Load256(b []byte) Vec256 {
	return Vec256{lo: Load128(b), hi: Load128(b[Width128:])}
}

// Load256Aligned loads 32 bytes from b. The caller must ensure &b[0] is
// 32-byte aligned.
func Load256Aligned(b []byte) Vec256 {
	return Vec256{lo: Load128Aligned(b), hi: Load128Aligned(b[Width128:])}
}

// Store256 writes the 32 lanes of v to dst at any alignment. len(dst) must
// be at least 32.
func Store256(dst []byte, v Vec256) {
	Store128(dst, v.lo)
	Store128(dst[Width128:], v.hi)
}

// Store256Aligned writes the 32 lanes of v to dst. The caller must ensure
// &dst[0] is 32-byte aligned.
func Store256Aligned(dst []byte, v Vec256) {
	Store128Aligned(dst, v.lo)
	Store128Aligned(dst[Width128:], v.hi)
}

// Broadcast256 returns a vector with c in every lane.
func Broadcast256(c byte) Vec256 {
	h := Broadcast128(c)
	return Vec256{lo: h, hi: h}
}

// Zero256 returns the all-zero vector.
func Zero256() Vec256 { return Vec256{} }

// CmpEq returns, per lane, all-one bits where v and w hold the same byte
// and all-zero bits elsewhere.
func (v Vec256) CmpEq(w Vec256) Vec256 {
	return Vec256{lo: v.lo.CmpEq(w.lo), hi: v.hi.CmpEq(w.hi)}
}

// Movemask collapses the top bit of every lane into a 32-bit Mask, bit i
// from lane i.
func (v Vec256) Movemask() Mask {
	return v.lo.Movemask() | v.hi.Movemask()<<Width128
}
