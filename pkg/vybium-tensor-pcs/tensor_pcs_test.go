package vybiumtensorpcs

import (
	"math/rand"
	"testing"
)

func randomElementForTest(rng *rand.Rand, level Level) Element {
	if level == Level7 {
		return NewExtensionElement(uint64(rng.Int63()), uint64(rng.Int63()))
	}
	return NewElement(level, uint64(rng.Int63()))
}

func TestPublicAPIRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	cfg := DefaultConfig()
	code, err := NewReedSolomonCode(cfg, 5, 2, 12)
	if err != nil {
		t.Fatalf("NewReedSolomonCode: %v", err)
	}

	scheme, err := NewBasicScheme(cfg.LogRows, code, cfg.BaseLevel, cfg.ExtensionLevel, cfg.HashFunction)
	if err != nil {
		t.Fatalf("NewBasicScheme: %v", err)
	}

	nVars := scheme.NVars()
	evals := make([]Element, 1<<uint(nVars))
	for i := range evals {
		evals[i] = randomElementForTest(rng, cfg.BaseLevel)
	}
	poly, err := NewPolynomial(evals, cfg.BaseLevel)
	if err != nil {
		t.Fatalf("NewPolynomial: %v", err)
	}
	polys := []Polynomial{poly}

	commitment, committed, err := scheme.Commit(polys)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	point := make([]Element, nVars)
	for i := range point {
		point[i] = randomElementForTest(rng, cfg.ExtensionLevel)
	}
	value, err := EvaluatePolynomial(poly, point)
	if err != nil {
		t.Fatalf("EvaluatePolynomial: %v", err)
	}

	transcript := NewTranscript()
	proof, err := scheme.Prove(transcript.Fork(), committed, polys, point)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	if err := scheme.Verify(transcript.Fork(), commitment, point, proof, []Element{value}); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestNewScheme(t *testing.T) {
	cfg := DefaultConfig()
	code, err := NewReedSolomonCode(cfg, 4, 2, 8)
	if err != nil {
		t.Fatalf("NewReedSolomonCode: %v", err)
	}
	if _, err := NewScheme(cfg, code); err != nil {
		t.Fatalf("NewScheme: %v", err)
	}
}
