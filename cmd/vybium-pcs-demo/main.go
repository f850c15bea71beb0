package main

import (
	"fmt"
	"math/rand"
	"os"

	vybiumtensorpcs "github.com/vybium/vybium-tensor-pcs/pkg/vybium-tensor-pcs"
)

func randomElement(rng *rand.Rand, level vybiumtensorpcs.Level) vybiumtensorpcs.Element {
	if level == vybiumtensorpcs.Level7 {
		return vybiumtensorpcs.NewExtensionElement(uint64(rng.Int63()), uint64(rng.Int63()))
	}
	return vybiumtensorpcs.NewElement(level, uint64(rng.Int63()))
}

func main() {
	logStderr("Building Reed-Solomon code...")
	cfg := vybiumtensorpcs.DefaultConfig()
	code, err := vybiumtensorpcs.NewReedSolomonCode(cfg, 5, 2, 12)
	if err != nil {
		fatal(fmt.Sprintf("failed to build code: %v", err))
	}

	logStderr("Building basic tensor-product commitment scheme...")
	scheme, err := vybiumtensorpcs.NewBasicScheme(cfg.LogRows, code, cfg.BaseLevel, cfg.ExtensionLevel, cfg.HashFunction)
	if err != nil {
		fatal(fmt.Sprintf("failed to build scheme: %v", err))
	}

	rng := rand.New(rand.NewSource(1))
	nVars := scheme.NVars()
	width := 1 << uint(nVars)
	evals := make([]vybiumtensorpcs.Element, width)
	for i := range evals {
		evals[i] = randomElement(rng, cfg.BaseLevel)
	}
	poly, err := vybiumtensorpcs.NewPolynomial(evals, cfg.BaseLevel)
	if err != nil {
		fatal(fmt.Sprintf("failed to build polynomial: %v", err))
	}
	polys := []vybiumtensorpcs.Polynomial{poly}

	logStderr("Committing...")
	commitment, committed, err := scheme.Commit(polys)
	if err != nil {
		fatal(fmt.Sprintf("commit failed: %v", err))
	}

	point := make([]vybiumtensorpcs.Element, nVars)
	for i := range point {
		point[i] = randomElement(rng, cfg.ExtensionLevel)
	}

	value, err := vybiumtensorpcs.EvaluatePolynomial(poly, point)
	if err != nil {
		fatal(fmt.Sprintf("reference evaluation failed: %v", err))
	}

	transcript := vybiumtensorpcs.NewTranscript()

	logStderr("Proving evaluation...")
	proof, err := scheme.Prove(transcript.Fork(), committed, polys, point)
	if err != nil {
		fatal(fmt.Sprintf("prove failed: %v", err))
	}

	logStderr("Verifying evaluation...")
	if err := scheme.Verify(transcript.Fork(), commitment, point, proof, []vybiumtensorpcs.Element{value}); err != nil {
		fatal(fmt.Sprintf("verification failed: %v", err))
	}

	logStderr("Proof verified successfully")
	fmt.Printf("commitment: %x\n", commitment)
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "vybium-pcs-demo:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
