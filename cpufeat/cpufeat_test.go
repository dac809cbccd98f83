package cpufeat

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIsStable(t *testing.T) {
	first := Get()
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Get())
	}
}

func TestGetReportsArch(t *testing.T) {
	require.Equal(t, runtime.GOARCH, Get().Arch)
}

func TestResetRedetects(t *testing.T) {
	first := Get()
	reset()
	assert.Equal(t, Features{}, cached)
	assert.Equal(t, first, Get())
}

func TestFeatureImplications(t *testing.T) {
	f := Get()

	if f.Wide() {
		assert.True(t, f.AVX2, "wide chunks require AVX2")
		assert.True(t, f.Baseline(), "AVX2 without the 16-byte baseline")
	}
	if f.AVX2 {
		assert.True(t, f.AVX)
	}
	if f.AVX512BW {
		assert.True(t, f.AVX512F)
	}
	switch f.Arch {
	case "amd64":
		assert.True(t, f.SSE2, "SSE2 is architectural on amd64")
		assert.False(t, f.NEON)
	case "arm64":
		assert.True(t, f.NEON, "NEON is architectural on arm64")
		assert.False(t, f.SSE2)
	}
}

func TestGetConcurrent(t *testing.T) {
	reset()
	want := make(chan Features, 32)
	for i := 0; i < 32; i++ {
		go func() { want <- Get() }()
	}
	first := <-want
	for i := 1; i < 32; i++ {
		assert.Equal(t, first, <-want)
	}
}

func TestStringListsDetectedExtensions(t *testing.T) {
	f := Get()
	s := f.String()

	assert.Contains(t, s, "Architecture: "+f.Arch)
	if f.SSE2 {
		assert.Contains(t, s, "SSE2")
	}
	if f.AVX2 {
		assert.Contains(t, s, "AVX2")
	}
	if f.NEON {
		assert.Contains(t, s, "NEON")
	}

	// Absent extensions never show up.
	empty := Features{Arch: "none"}
	assert.False(t, strings.Contains(empty.String(), "- "))
}
