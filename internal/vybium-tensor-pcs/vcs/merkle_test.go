package vcs

import (
	"math/rand"
	"testing"

	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/hash"
)

func randomDigests(rng *rand.Rand, n int) []hash.Digest {
	out := make([]hash.Digest, n)
	for i := range out {
		rng.Read(out[i][:])
	}
	return out
}

func TestCommitProveVerifyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	const logLen = 4
	vcs := New(logLen, hash.SHA3Hasher{})

	vectors := [][]hash.Digest{
		randomDigests(rng, 1<<logLen),
		randomDigests(rng, 1<<logLen),
		randomDigests(rng, 1<<logLen),
	}

	commitment, committed, err := vcs.CommitBatch(vectors)
	if err != nil {
		t.Fatalf("CommitBatch: %v", err)
	}

	for _, idx := range []int{0, 1, 7, 15} {
		proof, err := vcs.ProveBatchOpening(committed, idx)
		if err != nil {
			t.Fatalf("ProveBatchOpening(%d): %v", idx, err)
		}
		leaves := make([]hash.Digest, len(vectors))
		for p, v := range vectors {
			leaves[p] = v[idx]
		}
		if err := vcs.VerifyBatchOpening(commitment, idx, proof, leaves); err != nil {
			t.Fatalf("VerifyBatchOpening(%d): %v", idx, err)
		}
	}
}

func TestVerifyRejectsWrongLeaf(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	const logLen = 3
	scheme := New(logLen, hash.SHA3Hasher{})

	vectors := [][]hash.Digest{randomDigests(rng, 1<<logLen)}
	commitment, committed, err := scheme.CommitBatch(vectors)
	if err != nil {
		t.Fatalf("CommitBatch: %v", err)
	}

	proof, err := scheme.ProveBatchOpening(committed, 2)
	if err != nil {
		t.Fatalf("ProveBatchOpening: %v", err)
	}

	wrong := randomDigests(rng, 1)
	if err := scheme.VerifyBatchOpening(commitment, 2, proof, wrong); err == nil {
		t.Fatalf("expected verification to fail for a forged leaf")
	}
}
