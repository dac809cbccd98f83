package vec

import "math/bits"

// Mask summarizes a per-lane comparison: bit i is set iff lane i of the
// compared vectors held equal bytes. Vec128 comparisons populate bits 0-15,
// Vec256 comparisons bits 0-31. A Mask is ephemeral, local to one
// comparison step.
type Mask uint32

// FirstSet returns the index of the lowest set bit, or 32 when no bit is
// set. Search loops test m != 0 separately; the 32 sentinel is only a
// defensive fallback and must not change.
func (m Mask) FirstSet() int { return bits.TrailingZeros32(uint32(m)) }

// Count returns the number of set bits, i.e. the number of matching lanes.
func (m Mask) Count() int { return bits.OnesCount32(uint32(m)) }
