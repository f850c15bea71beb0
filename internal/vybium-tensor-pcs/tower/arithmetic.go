package tower

// This file implements the recursive Karatsuba engine shared by tower
// levels 3 and up, and the table-driven base cases for levels 0-2 (with
// level 3 also using tables for square/multiply-alpha/invert, per the
// source construction). See DESIGN.md for the algorithm's grounding.

func splitHalf(level Level, v uint64) (lo, hi uint64) {
	half := uint(level.Bits() / 2)
	m := mask64(half)
	return v & m, (v >> half) & m
}

func joinHalf(level Level, lo, hi uint64) uint64 {
	half := uint(level.Bits() / 2)
	return (lo & mask64(half)) | (hi&mask64(half))<<half
}

// decompose splits a level-k element (k>=1) into its two direct-subfield
// halves, each an element at level k-1.
func decompose(a Element) (a0, a1 Element) {
	sub := a.level - 1
	if a.level == Level7 {
		return Element{level: sub, lo: a.lo}, Element{level: sub, lo: a.hi}
	}
	lo, hi := splitHalf(a.level, a.lo)
	return Element{level: sub, lo: lo}, Element{level: sub, lo: hi}
}

// compose rejoins two direct-subfield halves into a level-k element.
func compose(level Level, a0, a1 Element) Element {
	if level == Level7 {
		return Element{level: Level7, lo: a0.lo, hi: a1.lo}
	}
	return Element{level: level, lo: joinHalf(level, a0.lo, a1.lo)}
}

func mul(level Level, a, b Element) Element {
	switch level {
	case Level0:
		return Element{level: Level0, lo: a.lo & b.lo & 1}
	case Level1, Level2:
		return Element{level: level, lo: uint64(mulBin4b(byte(a.lo), byte(b.lo)))}
	case Level3:
		return karatsubaMul(level, a, b)
	case Level4, Level5, Level6:
		return karatsubaMul(level, a, b)
	case Level7:
		return mulLevel7(a, b)
	default:
		panic("tower: unsupported level")
	}
}

// karatsubaMul implements the recurrence for x=(x0,x1), y=(y0,y1):
//
//	z0 = x0*y0; z2 = x1*y1; z1 = (x0+x1)*(y0+y1) - (z0+z2)
//	result = (z0+z2, z1 + alpha*z2)
func karatsubaMul(level Level, a, b Element) Element {
	sub := level - 1
	a0, a1 := decompose(a)
	b0, b1 := decompose(b)
	z0 := mul(sub, a0, b0)
	z2 := mul(sub, a1, b1)
	z0z2 := z0.Add(z2)
	z1 := mul(sub, a0.Add(a1), b0.Add(b1)).Sub(z0z2)
	z2a := mulAlpha(sub, z2)
	return compose(level, z0z2, z1.Add(z2a))
}

func mulAlpha(level Level, a Element) Element {
	switch level {
	case Level0:
		return a
	case Level1:
		return Element{level: level, lo: uint64(mulBin4b(byte(a.lo), 0x02))}
	case Level2:
		return Element{level: level, lo: uint64(mulBin4b(byte(a.lo), 0x04))}
	case Level3:
		return Element{level: level, lo: uint64(alphaMap8b[byte(a.lo)])}
	default:
		// multiply_alpha at level k+1: (a1, a0 + alpha*a1)
		a0, a1 := decompose(a)
		z1 := mulAlpha(level-1, a1)
		return compose(level, a1, a0.Add(z1))
	}
}

func square(level Level, a Element) Element {
	switch level {
	case Level0:
		return a
	case Level1, Level2:
		return Element{level: level, lo: uint64(mulBin4b(byte(a.lo), byte(a.lo)))}
	case Level3:
		return Element{level: level, lo: uint64(squareMap8b[byte(a.lo)])}
	default:
		// square at level k+1: (x0^2 + x1^2, alpha*x1^2)
		a0, a1 := decompose(a)
		z0 := square(level-1, a0)
		z2 := square(level-1, a1)
		z2a := mulAlpha(level-1, z2)
		return compose(level, z0.Add(z2), z2a)
	}
}

func invert(level Level, a Element) (Element, bool) {
	switch level {
	case Level0:
		return a, a.lo == 1
	case Level1, Level2, Level3:
		candidate := Element{level: level, lo: uint64(inverse8b[byte(a.lo)])}
		return candidate, a.lo != 0
	default:
		// invert at level k+1: u = x0 + alpha*x1, delta = x0*u + x1^2;
		// if delta invertible, return (delta^-1*u, delta^-1*x1).
		a0, a1 := decompose(a)
		sub := level - 1
		a0z1 := a0.Add(mulAlpha(sub, a1))
		delta := mul(sub, a0, a0z1).Add(square(sub, a1))
		deltaInv, ok := invert(sub, delta)
		inv0 := mul(sub, deltaInv, a0z1)
		inv1 := mul(sub, deltaInv, a1)
		return compose(level, inv0, inv1), ok
	}
}
