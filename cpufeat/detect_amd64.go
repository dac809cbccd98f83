//go:build amd64

package cpufeat

import (
	"github.com/klauspost/cpuid/v2"
	segcpu "github.com/segmentio/asm/cpu"
	"github.com/segmentio/asm/cpu/x86"
)

func detect() Features {
	return Features{
		Vendor:   cpuid.CPU.VendorString,
		Brand:    cpuid.CPU.BrandName,
		Family:   cpuid.CPU.Family,
		Model:    cpuid.CPU.Model,
		SSE2:     segcpu.X86.Has(x86.SSE2),
		SSE3:     segcpu.X86.Has(x86.SSE3),
		SSSE3:    segcpu.X86.Has(x86.SSSE3),
		SSE41:    segcpu.X86.Has(x86.SSE41),
		SSE42:    segcpu.X86.Has(x86.SSE42),
		POPCNT:   cpuid.CPU.Supports(cpuid.POPCNT),
		AVX:      segcpu.X86.Has(x86.AVX),
		AVX2:     segcpu.X86.Has(x86.AVX2),
		AVX512F:  segcpu.X86.Has(x86.AVX512F),
		AVX512BW: segcpu.X86.Has(x86.AVX512BW),
	}
}
