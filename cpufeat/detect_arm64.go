//go:build arm64

package cpufeat

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

func detect() Features {
	f := Features{
		Vendor: "ARM",
		Brand:  cpuid.CPU.BrandName,
		NEON:   cpu.ARM64.HasASIMD,
		SVE:    cpu.ARM64.HasSVE,
	}
	// x/sys/cpu reads hwcaps only on Linux; ASIMD is architecturally
	// guaranteed on darwin arm64.
	if runtime.GOOS == "darwin" {
		f.NEON = true
	}
	return f
}
