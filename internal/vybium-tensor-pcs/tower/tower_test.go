package tower

import (
	"math/rand"
	"testing"
)

var allLevels = []Level{Level0, Level1, Level2, Level3, Level4, Level5, Level6, Level7}

func randomElement(rng *rand.Rand, level Level) Element {
	if level == Level7 {
		return FromHalves(rng.Uint64(), rng.Uint64())
	}
	return FromUint64(level, rng.Uint64())
}

func TestFieldAxioms(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, level := range allLevels {
		for i := 0; i < 64; i++ {
			x := randomElement(rng, level)
			y := randomElement(rng, level)
			z := randomElement(rng, level)

			if !x.Add(y).Equal(y.Add(x)) {
				t.Fatalf("level %d: addition not commutative", level)
			}
			if !x.Add(y).Add(z).Equal(x.Add(y.Add(z))) {
				t.Fatalf("level %d: addition not associative", level)
			}
			if !x.Mul(y).Equal(y.Mul(x)) {
				t.Fatalf("level %d: multiplication not commutative", level)
			}
			if !x.Mul(y).Mul(z).Equal(x.Mul(y.Mul(z))) {
				t.Fatalf("level %d: multiplication not associative", level)
			}
			if !x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z))) {
				t.Fatalf("level %d: distributivity fails", level)
			}
			if !x.Add(x).IsZero() {
				t.Fatalf("level %d: x+x != 0", level)
			}
			if !x.Mul(One(level)).Equal(x) {
				t.Fatalf("level %d: x*1 != x", level)
			}
			if !x.Mul(Zero(level)).IsZero() {
				t.Fatalf("level %d: x*0 != 0", level)
			}
			if !x.Square().Equal(x.Mul(x)) {
				t.Fatalf("level %d: square(x) != x*x", level)
			}
			alphaK := alphaConstant(level)
			if !x.MulAlpha().Equal(x.Mul(alphaK)) {
				t.Fatalf("level %d: multiply_alpha(x) != alpha*x", level)
			}
			if !x.IsZero() {
				inv, ok := x.Invert()
				if !ok {
					t.Fatalf("level %d: invert(nonzero) reported no value", level)
				}
				if !inv.Mul(x).Equal(One(level)) {
					t.Fatalf("level %d: invert(x)*x != 1", level)
				}
			}
		}
		if _, ok := Zero(level).Invert(); ok {
			t.Fatalf("level %d: invert(0) reported a value", level)
		}
	}
}

// alphaConstant returns alpha_k by applying multiply_alpha to the level's
// multiplicative identity, per alpha_k = alpha_{k-1}^2 + alpha_{k-1},
// alpha_0 = 1: equivalently, alpha_k = 1.multiply_alpha() at level k.
func alphaConstant(level Level) Element {
	return One(level).MulAlpha()
}

func TestFrobenius(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, level := range allLevels {
		m := 1 << uint(level)
		for i := 0; i < 8; i++ {
			x := randomElement(rng, level)
			y := x
			for j := 0; j < m; j++ {
				y = y.Square()
			}
			if !y.Equal(x) {
				t.Fatalf("level %d: Frobenius identity x^(2^%d) != x", level, m)
			}
		}
	}
}

func TestEmbedding(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for level := Level0; level < Level7; level++ {
		up := level + 1
		for i := 0; i < 32; i++ {
			x := randomElement(rng, level)
			y := randomElement(rng, level)

			xUp := compose(up, x, Zero(level))
			yUp := compose(up, y, Zero(level))

			if !compose(up, x.Add(y), Zero(level)).Equal(xUp.Add(yUp)) {
				t.Fatalf("level %d embedding: add disagrees", level)
			}
			if !compose(up, x.Mul(y), Zero(level)).Equal(xUp.Mul(yUp)) {
				t.Fatalf("level %d embedding: mul disagrees", level)
			}
			if !compose(up, x.Square(), Zero(level)).Equal(xUp.Square()) {
				t.Fatalf("level %d embedding: square disagrees", level)
			}
		}
	}
}

func TestLevel3Scenario(t *testing.T) {
	// Seed scenario from the test suite: x = 0xA5, y = 0x3C at level 3.
	x := FromUint64(Level3, 0xA5)
	y := FromUint64(Level3, 0x3C)

	product := x.Mul(y)
	if product.Level() != Level3 {
		t.Fatalf("unexpected level")
	}

	inv, ok := x.Invert()
	if !ok {
		t.Fatalf("invert(0xA5) reported no value")
	}
	if !inv.Mul(x).Equal(One(Level3)) {
		t.Fatalf("invert(x)*x != 1")
	}
}

func TestLiftEmbedsAsSubfield(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for level := Level0; level < Level7; level++ {
		x := randomElement(rng, level)
		y := randomElement(rng, level)
		for target := level + 1; target <= Level7; target++ {
			xUp := x.Lift(target)
			yUp := y.Lift(target)
			if xUp.Level() != target {
				t.Fatalf("lift level %d->%d: wrong result level", level, target)
			}
			if !x.Add(y).Lift(target).Equal(xUp.Add(yUp)) {
				t.Fatalf("lift level %d->%d: add disagrees", level, target)
			}
			if !x.Mul(y).Lift(target).Equal(xUp.Mul(yUp)) {
				t.Fatalf("lift level %d->%d: mul disagrees", level, target)
			}
		}
	}
}

func TestLevel7FastPathAgreesWithGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 256; i++ {
		a := randomElement(rng, Level7)
		b := randomElement(rng, Level7)
		generic := karatsubaMul(Level7, a, b)
		wide := mulLevel7Wide(a, b)
		if !generic.Equal(wide) {
			t.Fatalf("level7 fast path disagrees with generic path: %v*%v -> %v vs %v", a, b, generic, wide)
		}
	}
}
