package multilinear

import (
	"math/rand"
	"testing"

	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/packed"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/tower"
)

func TestExpandQuerySumsToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	point := []tower.Element{
		tower.FromUint64(tower.Level3, uint64(rng.Intn(256))),
		tower.FromUint64(tower.Level3, uint64(rng.Intn(256))),
		tower.FromUint64(tower.Level3, uint64(rng.Intn(256))),
	}
	q := ExpandQuery(tower.Level3, point)
	if len(q.Expansion()) != 8 {
		t.Fatalf("expected 8 coefficients, got %d", len(q.Expansion()))
	}
	sum := tower.Zero(tower.Level3)
	for _, c := range q.Expansion() {
		sum = sum.Add(c)
	}
	if !sum.Equal(tower.One(tower.Level3)) {
		t.Fatalf("tensor expansion coefficients must sum to 1, got %v", sum)
	}
}

func TestEvaluateAtCorner(t *testing.T) {
	// A 2-variable extension evaluated at a Boolean corner must reproduce
	// the table entry at that corner's index.
	evals := packed.New(tower.Level3, 4)
	for i := 0; i < 4; i++ {
		evals.Set(i, tower.FromUint64(tower.Level3, uint64(10+i)))
	}
	ext, err := FromValues(evals)
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}
	if ext.NVars() != 2 {
		t.Fatalf("expected 2 vars, got %d", ext.NVars())
	}

	// index 3 = bits (1,1) little-endian: v0=1, v1=1
	point := []tower.Element{tower.One(tower.Level3), tower.One(tower.Level3)}
	q := ExpandQuery(tower.Level3, point)
	got, err := ext.Evaluate(q)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !got.Equal(tower.FromUint64(tower.Level3, 13)) {
		t.Fatalf("corner evaluation = %v, want 13", got)
	}
}

func TestEvaluatePartialHighMatchesFullEvaluate(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	n := 16
	evals := packed.New(tower.Level3, n)
	for i := 0; i < n; i++ {
		evals.Set(i, tower.FromUint64(tower.Level3, uint64(rng.Intn(256))))
	}
	ext, err := FromValues(evals)
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}

	highPoint := []tower.Element{
		tower.FromUint64(tower.Level3, uint64(rng.Intn(256))),
		tower.FromUint64(tower.Level3, uint64(rng.Intn(256))),
	}
	lowPoint := []tower.Element{
		tower.FromUint64(tower.Level3, uint64(rng.Intn(256))),
		tower.FromUint64(tower.Level3, uint64(rng.Intn(256))),
	}

	highQuery := ExpandQuery(tower.Level3, highPoint)
	folded, err := ext.EvaluatePartialHigh(highQuery)
	if err != nil {
		t.Fatalf("EvaluatePartialHigh: %v", err)
	}
	lowQuery := ExpandQuery(tower.Level3, lowPoint)
	viaFold, err := folded.Evaluate(lowQuery)
	if err != nil {
		t.Fatalf("Evaluate(folded): %v", err)
	}

	fullPoint := append(append([]tower.Element{}, lowPoint...), highPoint...)
	fullQuery := ExpandQuery(tower.Level3, fullPoint)
	direct, err := ext.Evaluate(fullQuery)
	if err != nil {
		t.Fatalf("Evaluate(direct): %v", err)
	}

	if !viaFold.Equal(direct) {
		t.Fatalf("partial-high fold then evaluate disagrees with direct evaluate: %v vs %v", viaFold, direct)
	}
}
