// Package vcs implements vector commitment schemes used to bind the
// prover to the encoded column digests of a committed matrix, and to open
// individual columns against that commitment.
package vcs

import (
	"fmt"

	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/hash"
)

// VectorCommitScheme commits to a batch of equal-length digest vectors (one
// per committed polynomial) column-by-column: leaf i of the tree binds the
// i-th digest of every vector in the batch.
type VectorCommitScheme interface {
	// CommitBatch commits to vectors, one equal-length []hash.Digest slice
	// per polynomial in the batch, and returns the commitment plus whatever
	// auxiliary state ProveBatchOpening needs.
	CommitBatch(vectors [][]hash.Digest) (Commitment, Committed, error)
	// ProveBatchOpening returns an opening proof for column index across
	// every vector in the batch.
	ProveBatchOpening(committed Committed, index int) (Proof, error)
	// VerifyBatchOpening checks that leafDigests (one per polynomial, in
	// batch order) are the digests actually committed at index.
	VerifyBatchOpening(commitment Commitment, index int, proof Proof, leafDigests []hash.Digest) error
}

// Commitment is the public root of a vector commitment.
type Commitment = hash.Digest

// Committed is the prover-side state retained after commit, here the full
// per-vector Merkle trees needed to answer openings.
type Committed struct {
	trees [][]hash.Digest // trees[p] is the flattened level-by-level tree for vector p, leaves first
	nLeaves int
}

// Proof is a batch opening proof: one Merkle authentication path per
// vector in the batch, all at the same leaf index, so the sibling digests
// at each level differ per vector but the path length does not.
type Proof struct {
	Siblings [][]hash.Digest // Siblings[p][level]
}

// MerkleVCS commits leaves using a binary Merkle tree, each internal node
// hashing its two children with a pluggable Hasher.
type MerkleVCS struct {
	logLen int
	hasher hash.Hasher
}

// New constructs a MerkleVCS over vectors of exactly 1<<logLen digests.
func New(logLen int, hasher hash.Hasher) *MerkleVCS {
	return &MerkleVCS{logLen: logLen, hasher: hasher}
}

func (m *MerkleVCS) buildTree(leaves []hash.Digest) []hash.Digest {
	n := len(leaves)
	tree := make([]hash.Digest, 0, 2*n-1)
	tree = append(tree, leaves...)
	level := leaves
	for len(level) > 1 {
		next := make([]hash.Digest, len(level)/2)
		for i := range next {
			next[i] = m.hasher.HashDigests(level[2*i], level[2*i+1])
		}
		tree = append(tree, next...)
		level = next
	}
	return tree
}

// CommitBatch commits to one Merkle tree per vector, then folds all the
// vectors' roots together into a single top-level commitment via the same
// pairwise hash, so opening proofs can be verified against one digest.
func (m *MerkleVCS) CommitBatch(vectors [][]hash.Digest) (Commitment, Committed, error) {
	n := 1 << uint(m.logLen)
	trees := make([][]hash.Digest, len(vectors))
	for i, v := range vectors {
		if len(v) != n {
			return Commitment{}, Committed{}, fmt.Errorf("vcs: vector %d has length %d, expected %d", i, len(v), n)
		}
		trees[i] = m.buildTree(v)
	}

	roots := make([]hash.Digest, len(vectors))
	for i, t := range trees {
		if len(t) == 0 {
			return Commitment{}, Committed{}, fmt.Errorf("vcs: empty tree for vector %d", i)
		}
		roots[i] = t[len(t)-1]
	}
	commitment := foldRoots(m.hasher, roots)

	return commitment, Committed{trees: trees, nLeaves: n}, nil
}

func foldRoots(h hash.Hasher, roots []hash.Digest) hash.Digest {
	if len(roots) == 0 {
		return hash.Digest{}
	}
	acc := roots[0]
	for _, r := range roots[1:] {
		acc = h.HashDigests(acc, r)
	}
	return acc
}

func (m *MerkleVCS) siblingPath(tree []hash.Digest, index int) []hash.Digest {
	path := make([]hash.Digest, 0, m.logLen)
	levelStart := 0
	levelSize := 1 << uint(m.logLen)
	idx := index
	for levelSize > 1 {
		sibling := idx ^ 1
		path = append(path, tree[levelStart+sibling])
		levelStart += levelSize
		levelSize /= 2
		idx /= 2
	}
	return path
}

func (m *MerkleVCS) ProveBatchOpening(committed Committed, index int) (Proof, error) {
	n := 1 << uint(m.logLen)
	if index < 0 || index >= n {
		return Proof{}, fmt.Errorf("vcs: index %d out of range [0,%d)", index, n)
	}
	siblings := make([][]hash.Digest, len(committed.trees))
	for p, tree := range committed.trees {
		siblings[p] = m.siblingPath(tree, index)
	}
	return Proof{Siblings: siblings}, nil
}

func (m *MerkleVCS) recomputeRoot(leaf hash.Digest, index int, path []hash.Digest) hash.Digest {
	acc := leaf
	idx := index
	for _, sibling := range path {
		if idx%2 == 0 {
			acc = m.hasher.HashDigests(acc, sibling)
		} else {
			acc = m.hasher.HashDigests(sibling, acc)
		}
		idx /= 2
	}
	return acc
}

func (m *MerkleVCS) VerifyBatchOpening(commitment Commitment, index int, proof Proof, leafDigests []hash.Digest) error {
	if len(proof.Siblings) != len(leafDigests) {
		return fmt.Errorf("vcs: proof has %d vectors, got %d leaf digests", len(proof.Siblings), len(leafDigests))
	}
	roots := make([]hash.Digest, len(leafDigests))
	for p, leaf := range leafDigests {
		if len(proof.Siblings[p]) != m.logLen {
			return fmt.Errorf("vcs: vector %d proof has %d levels, expected %d", p, len(proof.Siblings[p]), m.logLen)
		}
		roots[p] = m.recomputeRoot(leaf, index, proof.Siblings[p])
	}
	recomputed := foldRoots(m.hasher, roots)
	if recomputed != commitment {
		return fmt.Errorf("vcs: opening does not match commitment")
	}
	return nil
}
