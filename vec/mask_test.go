package vec

import (
	"math/rand"
	"testing"
)

func TestMaskFirstSet(t *testing.T) {
	if got := Mask(0).FirstSet(); got != 32 {
		t.Errorf("FirstSet(0) = %d, want 32", got)
	}
	for k := 0; k < 32; k++ {
		if got := (Mask(1) << k).FirstSet(); got != k {
			t.Errorf("FirstSet(1<<%d) = %d, want %d", k, got, k)
		}
		// Higher garbage bits must not matter.
		m := Mask(1)<<k | Mask(0xAAAA0000)<<k
		if got := m.FirstSet(); got != k {
			t.Errorf("FirstSet(%#x) = %d, want %d", m, got, k)
		}
	}
}

func TestMaskCount(t *testing.T) {
	naive := func(m Mask) int {
		n := 0
		for i := 0; i < 32; i++ {
			if m&(1<<i) != 0 {
				n++
			}
		}
		return n
	}

	for _, m := range []Mask{0, 1, 0xFFFF, 0xFFFFFFFF, 0x80000000} {
		if got := m.Count(); got != naive(m) {
			t.Errorf("Count(%#x) = %d, want %d", m, got, naive(m))
		}
	}
	for i := 0; i < 10000; i++ {
		m := Mask(rand.Uint32())
		if got := m.Count(); got != naive(m) {
			t.Fatalf("Count(%#x) = %d, want %d", m, got, naive(m))
		}
	}
}
