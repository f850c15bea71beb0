package pcs

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/challenger"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/codes"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/multilinear"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/packed"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/tower"
)

func assertErrorCode(t *testing.T, err error, want ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error, got nil")
	}
	var pcsErr *Error
	if !errors.As(err, &pcsErr) {
		t.Fatalf("expected a *Error, got %T: %v", err, err)
	}
	if pcsErr.Code != want {
		t.Fatalf("error code = %v, want %v", pcsErr.Code, want)
	}
}

func randomExtension(rng *rand.Rand, level tower.Level, nVars int) multilinear.Extension {
	width := 1 << uint(nVars)
	v := packed.New(level, width)
	mask := uint64(1)<<uint(level.Bits()) - 1
	if level.Bits() >= 64 {
		mask = ^uint64(0)
	}
	for i := 0; i < width; i++ {
		v.Set(i, tower.FromUint64(level, uint64(rng.Int63())&mask))
	}
	ext, err := multilinear.FromValues(v)
	if err != nil {
		panic(err)
	}
	return ext
}

func randomPoint(rng *rand.Rand, level tower.Level, n int) []tower.Element {
	mask := uint64(1)<<uint(level.Bits()) - 1
	if level.Bits() >= 64 {
		mask = ^uint64(0)
	}
	out := make([]tower.Element, n)
	for i := range out {
		if level == tower.Level7 {
			out[i] = tower.FromHalves(uint64(rng.Int63()), uint64(rng.Int63()))
			continue
		}
		out[i] = tower.FromUint64(level, uint64(rng.Int63())&mask)
	}
	return out
}

func runRoundTrip(t *testing.T, pcsInst *TensorPCS, polys []multilinear.Extension, rng *rand.Rand) {
	t.Helper()

	point := randomPoint(rng, pcsInst.cfg.ExtensionLevel, pcsInst.NVars())
	expandedFull := multilinear.ExpandQuery(pcsInst.cfg.ExtensionLevel, point)

	values := make([]tower.Element, len(polys))
	for i, p := range polys {
		v, err := p.Evaluate(expandedFull)
		if err != nil {
			t.Fatalf("evaluating polynomial %d: %v", i, err)
		}
		values[i] = v
	}

	commitment, committed, err := pcsInst.Commit(polys)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	transcript := challenger.NewSha3Challenger()
	proveChallenger := transcript.Clone()
	verifyChallenger := transcript.Clone()

	proof, err := pcsInst.ProveEvaluation(proveChallenger, committed, polys, point)
	if err != nil {
		t.Fatalf("ProveEvaluation: %v", err)
	}

	if err := pcsInst.VerifyEvaluation(verifyChallenger, commitment, point, proof, values); err != nil {
		t.Fatalf("VerifyEvaluation: %v", err)
	}
}

func TestBasicSchemeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	code, err := codes.NewBinaryAdditiveCode(tower.Level3, 5, 2, 12)
	if err != nil {
		t.Fatalf("NewBinaryAdditiveCode: %v", err)
	}

	inst, err := NewBasic(4, code, tower.Level3, tower.Level7, "sha3")
	if err != nil {
		t.Fatalf("NewBasic: %v", err)
	}

	for _, nPolys := range []int{1, 2, 3, 7, 10} {
		polys := make([]multilinear.Extension, nPolys)
		for i := range polys {
			polys[i] = randomExtension(rng, tower.Level3, inst.NVars())
		}
		runRoundTrip(t, inst, polys, rng)
	}
}

func TestBasicSchemeRejectsTamperedProof(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	code, err := codes.NewBinaryAdditiveCode(tower.Level3, 5, 2, 12)
	if err != nil {
		t.Fatalf("NewBinaryAdditiveCode: %v", err)
	}
	inst, err := NewBasic(4, code, tower.Level3, tower.Level7, "sha3")
	if err != nil {
		t.Fatalf("NewBasic: %v", err)
	}

	polys := []multilinear.Extension{randomExtension(rng, tower.Level3, inst.NVars())}
	point := randomPoint(rng, tower.Level7, inst.NVars())
	expanded := multilinear.ExpandQuery(tower.Level7, point)
	value, err := polys[0].Evaluate(expanded)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	commitment, committed, err := inst.Commit(polys)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	transcript := challenger.NewSha3Challenger()

	t.Run("tampered claimed value", func(t *testing.T) {
		proof, err := inst.ProveEvaluation(transcript.Clone(), committed, polys, point)
		if err != nil {
			t.Fatalf("ProveEvaluation: %v", err)
		}
		wrongValue := value.Add(tower.One(tower.Level7))
		err = inst.VerifyEvaluation(transcript.Clone(), commitment, point, proof, []tower.Element{wrongValue})
		assertErrorCode(t, err, ErrIncorrectEvaluation)
	})

	t.Run("tampered mixed t-prime", func(t *testing.T) {
		proof, err := inst.ProveEvaluation(transcript.Clone(), committed, polys, point)
		if err != nil {
			t.Fatalf("ProveEvaluation: %v", err)
		}
		// Corrupting one evaluation-table entry changes MixedTPrime's value
		// at the (generic, random) low-query point, so this is caught by
		// the evaluate-vs-claimed check, per spec.md scenario 4.
		evals := proof.MixedTPrime.Evals()
		evals.Set(0, evals.Get(0).Add(tower.One(tower.Level7)))
		err = inst.VerifyEvaluation(transcript.Clone(), commitment, point, proof, []tower.Element{value})
		assertErrorCode(t, err, ErrIncorrectEvaluation)
	})

	t.Run("tampered opened column", func(t *testing.T) {
		proof, err := inst.ProveEvaluation(transcript.Clone(), committed, polys, point)
		if err != nil {
			t.Fatalf("ProveEvaluation: %v", err)
		}
		// The verifier recomputes each leaf digest directly from the
		// opened column, so a tampered byte changes the leaf the vector
		// commitment check recomputes the root from; it is caught there,
		// before the partial-evaluation consistency check ever runs.
		proof.Columns[0][0][0] = proof.Columns[0][0][0].Add(tower.One(tower.Level3))
		err = inst.VerifyEvaluation(transcript.Clone(), commitment, point, proof, []tower.Element{value})
		assertErrorCode(t, err, ErrVectorCommit)
	})
}

func TestBlockSchemeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	code, err := codes.NewBinaryAdditiveCode(tower.Level3, 5, 2, 12)
	if err != nil {
		t.Fatalf("NewBinaryAdditiveCode: %v", err)
	}

	inst, err := NewBlock(8, code, tower.Level0, tower.Level3, tower.Level7, "sha3")
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}

	for _, nPolys := range []int{1, 4, 9} {
		polys := make([]multilinear.Extension, nPolys)
		for i := range polys {
			polys[i] = randomExtension(rng, tower.Level0, inst.NVars())
		}
		runRoundTrip(t, inst, polys, rng)
	}
}
