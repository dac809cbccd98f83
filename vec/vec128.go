//go:build !purego

package vec

import "encoding/binary"

// Vec128 is 16 byte lanes packed into two 64-bit little-endian words and
// operated on SWAR-style. Lane i is byte i of the word layout: lanes 0-7
// live in the low word, lanes 8-15 in the high word.
type Vec128 struct{ lo, hi uint64 }

const (
	lanesLSB = 0x0101010101010101 // bit 0 of every lane
	lanesMSB = 0x8080808080808080 // bit 7 of every lane
)

// Load128 loads 16 bytes from b at any alignment. len(b) must be at least
// 16.
func Load128(b []byte) Vec128 {
	return Vec128{
		lo: binary.LittleEndian.Uint64(b),
		hi: binary.LittleEndian.Uint64(b[8:]),
	}
}

// Load128Aligned loads 16 bytes from b. The caller must ensure &b[0] is
// 16-byte aligned; passing a misaligned slice violates the contract even on
// backends that tolerate it.
func Load128Aligned(b []byte) Vec128 { return Load128(b) }

// Store128 writes the 16 lanes of v to dst at any alignment. len(dst) must
// be at least 16.
func Store128(dst []byte, v Vec128) {
	binary.LittleEndian.PutUint64(dst, v.lo)
	binary.LittleEndian.PutUint64(dst[8:], v.hi)
}

// Store128Aligned writes the 16 lanes of v to dst. The caller must ensure
// &dst[0] is 16-byte aligned.
func Store128Aligned(dst []byte, v Vec128) { Store128(dst, v) }

// Broadcast128 returns a vector with c in every lane.
func Broadcast128(c byte) Vec128 {
	w := uint64(c) * lanesLSB
	return Vec128{lo: w, hi: w}
}

// Zero128 returns the all-zero vector.
func Zero128() Vec128 { return Vec128{} }

// CmpEq returns, per lane, all-one bits where v and w hold the same byte
// and all-zero bits elsewhere.
func (v Vec128) CmpEq(w Vec128) Vec128 {
	return Vec128{lo: eqLanes(v.lo, w.lo), hi: eqLanes(v.hi, w.hi)}
}

// eqLanes computes an exact per-lane equality mask for one word. The usual
// zero-byte trick ((x-lsb) &^ x & msb) lets subtraction borrows leak across
// lanes, which corrupts popcount-based tallies; OR-ing the top bit in
// before subtracting keeps every lane's subtraction independent.
func eqLanes(a, b uint64) uint64 {
	x := a ^ b // 0x00 in equal lanes
	msbs := ^(((x | lanesMSB) - lanesLSB) | x) & lanesMSB
	return (msbs >> 7) * 0xFF
}

// Movemask collapses the top bit of every lane into a 16-bit Mask, bit i
// from lane i.
func (v Vec128) Movemask() Mask {
	return Mask(movemaskWord(v.lo) | movemaskWord(v.hi)<<8)
}

// movemaskWord gathers bit 7 of each of the 8 lanes of w into the low 8
// bits of the result. The multiplier has a bit at position 7k for k in
// 0..7, so lane i's top bit (position 8i+7) lands at position 56+i; no two
// partial products collide, so no carries disturb the packed byte.
func movemaskWord(w uint64) uint32 {
	return uint32((w & lanesMSB) * 0x0002040810204081 >> 56)
}
