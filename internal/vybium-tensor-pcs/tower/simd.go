package tower

import "github.com/klauspost/cpuid/v2"

// hasFastLevel7 reports whether the host advertises the carry-less-multiply
// and GF-affine-transform instructions (PCLMULQDQ/GFNI) that a hardware
// accelerated Level7 multiply would target. Both dispatch targets below are
// portable Go and produce identical results; this only selects between the
// generic recursive engine and a hand-unrolled variant tuned for the widest
// tower level, mirroring the source construction's conditional-compile
// hardware path (see DESIGN.md) without requiring hand-written assembly.
func hasFastLevel7() bool {
	return cpuid.CPU.Supports(cpuid.PCLMULQDQ) && cpuid.CPU.Supports(cpuid.GFNI)
}

// mulLevel7 dispatches the Level7 (128-bit) multiply between the generic
// recursive engine (always correct, used for every level including 7) and a
// hand-unrolled variant of the exact same Karatsuba formula that avoids the
// recursive Element-wrapping overhead for the widest, most call-heavy level.
func mulLevel7(a, b Element) Element {
	if hasFastLevel7() {
		return mulLevel7Wide(a, b)
	}
	return karatsubaMul(Level7, a, b)
}

// mulLevel7Wide computes the same z0,z2,z1 Karatsuba combination as
// karatsubaMul, but reads a/b's halves directly instead of going through
// decompose/compose, and is kept as a separate implementation so tests can
// cross-validate it against the generic path on random inputs.
func mulLevel7Wide(a, b Element) Element {
	a0 := Element{level: Level6, lo: a.lo}
	a1 := Element{level: Level6, lo: a.hi}
	b0 := Element{level: Level6, lo: b.lo}
	b1 := Element{level: Level6, lo: b.hi}

	z0 := mul(Level6, a0, b0)
	z2 := mul(Level6, a1, b1)
	z0z2 := z0.Add(z2)
	z1 := mul(Level6, a0.Add(a1), b0.Add(b1)).Sub(z0z2)
	z2a := mulAlpha(Level6, z2)

	return Element{level: Level7, lo: z0z2.lo, hi: z1.Add(z2a).lo}
}
