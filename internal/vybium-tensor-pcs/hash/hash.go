// Package hash provides the column-hashing primitive used to turn an
// encoded matrix column into a fixed-size digest before it is committed to
// by a vector commitment scheme.
package hash

import (
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/packed"
)

// Digest is a fixed-size hash output. 32 bytes covers both supported
// hash functions (SHA3-256 and BLAKE3's default output size).
type Digest [32]byte

// Hasher reduces one packed column vector to a single Digest.
type Hasher interface {
	HashColumn(col packed.Vector) Digest
	// HashDigests compresses two digests into one, used to build internal
	// Merkle tree nodes from their children.
	HashDigests(left, right Digest) Digest
}

// SHA3Hasher hashes with SHA3-256 (golang.org/x/crypto/sha3).
type SHA3Hasher struct{}

func (SHA3Hasher) HashColumn(col packed.Vector) Digest {
	return Digest(sha3.Sum256(col.Bytes()))
}

func (SHA3Hasher) HashDigests(left, right Digest) Digest {
	h := sha3.New256()
	h.Write(left[:])
	h.Write(right[:])
	var out Digest
	h.Sum(out[:0])
	return out
}

// Blake3Hasher hashes with BLAKE3 (github.com/zeebo/blake3).
type Blake3Hasher struct{}

func (Blake3Hasher) HashColumn(col packed.Vector) Digest {
	h := blake3.New()
	h.Write(col.Bytes())
	var out Digest
	h.Digest().Read(out[:])
	return out
}

func (Blake3Hasher) HashDigests(left, right Digest) Digest {
	h := blake3.New()
	h.Write(left[:])
	h.Write(right[:])
	var out Digest
	h.Digest().Read(out[:])
	return out
}

// ByName resolves a hash function by its configuration name ("sha3" or
// "blake3").
func ByName(name string) (Hasher, bool) {
	switch name {
	case "sha3":
		return SHA3Hasher{}, true
	case "blake3":
		return Blake3Hasher{}, true
	default:
		return nil, false
	}
}
