// Package cpufeat queries the running CPU for usable vector instruction
// extensions. The descriptor is computed at most once, on first use, behind
// a one-time gate; it is immutable afterwards, so reads need no further
// synchronization.
package cpufeat

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// Features describes the vector extensions usable at runtime, plus CPU
// identification. The zero value means nothing was detected.
type Features struct {
	Arch string // runtime.GOARCH of the running process

	// Identification.
	Vendor string
	Brand  string
	Family int
	Model  int

	// x86 extensions.
	SSE2     bool
	SSE3     bool
	SSSE3    bool
	SSE41    bool
	SSE42    bool
	POPCNT   bool
	AVX      bool
	AVX2     bool
	AVX512F  bool
	AVX512BW bool

	// ARM extensions.
	NEON bool
	SVE  bool
}

var (
	once   sync.Once
	cached Features
)

// Get returns the cached capability descriptor, detecting it on the first
// call. The returned value is bit-identical across calls.
func Get() Features {
	once.Do(func() {
		cached = detect()
		cached.Arch = runtime.GOARCH
	})
	return cached
}

// reset clears the cache so tests can exercise the init lifecycle again.
func reset() {
	once = sync.Once{}
	cached = Features{}
}

// Baseline reports whether the 16-byte baseline extension is present.
func (f Features) Baseline() bool { return f.SSE2 || f.NEON }

// Wide reports whether 32-byte chunks are worthwhile. Only x86 has a native
// 32-lane register with single-instruction mask extraction; on ARM a
// 32-byte vector degrades to two 16-byte halves with no extraction win, so
// scanning there stays on 16-byte chunks.
func (f Features) Wide() bool { return f.AVX2 }

// String renders the descriptor in a human-readable form.
func (f Features) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Architecture: %s\n", f.Arch)
	if f.Vendor != "" {
		fmt.Fprintf(&b, "Vendor: %s\n", f.Vendor)
	}
	if f.Brand != "" {
		fmt.Fprintf(&b, "Brand: %s\n", f.Brand)
	}
	if f.Family != 0 || f.Model != 0 {
		fmt.Fprintf(&b, "Family: %d Model: %d\n", f.Family, f.Model)
	}
	b.WriteString("Vector extensions:\n")
	for _, e := range []struct {
		name string
		on   bool
	}{
		{"SSE2", f.SSE2},
		{"SSE3", f.SSE3},
		{"SSSE3", f.SSSE3},
		{"SSE4.1", f.SSE41},
		{"SSE4.2", f.SSE42},
		{"POPCNT", f.POPCNT},
		{"AVX", f.AVX},
		{"AVX2", f.AVX2},
		{"AVX-512F", f.AVX512F},
		{"AVX-512BW", f.AVX512BW},
		{"NEON", f.NEON},
		{"SVE", f.SVE},
	} {
		if e.on {
			fmt.Fprintf(&b, "  - %s\n", e.name)
		}
	}
	return b.String()
}
