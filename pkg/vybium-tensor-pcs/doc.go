// Package vybiumtensorpcs provides a production-ready tensor-product
// polynomial commitment scheme over binary tower fields, following the
// DP23/Binius construction.
//
// # Features
//
// - Binary tower field arithmetic (Cantor/Wiedemann basis, levels 0-7)
// - Packed, byte-backed vectors over tower field elements
// - Commit metadata bucketing for batches of multilinear oracles
// - A tensor-product polynomial commitment scheme (basic and block schemes)
// - Pluggable linear codes and hash functions; the vector commitment
//   scheme is always a binary Merkle tree and cannot be replaced
// - A SHA3-based Fiat-Shamir transcript
//
// # Quick Start
//
// Committing a batch of polynomials and proving an evaluation:
//
//	config := vybiumtensorpcs.DefaultConfig()
//	code, err := vybiumtensorpcs.NewReedSolomonCode(config, 5, 2, 12)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	scheme, err := vybiumtensorpcs.NewBasicScheme(config.LogRows, code,
//		config.BaseLevel, config.ExtensionLevel, config.HashFunction)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	commitment, committed, err := scheme.Commit(polys)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	transcript := vybiumtensorpcs.NewTranscript()
//	proof, err := scheme.Prove(transcript.Fork(), committed, polys, point)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = scheme.Verify(transcript.Fork(), commitment, point, proof, values)
//	if err != nil {
//		log.Fatal("verification failed:", err)
//	}
//
// # Architecture
//
// vybium-tensor-pcs uses a hybrid public/private architecture:
//
// - pkg/vybium-tensor-pcs/: Public API (this package)
// - internal/vybium-tensor-pcs/: Private implementation (not importable)
//
// The public API provides stable interfaces for configuring, committing to,
// and proving evaluations of batches of multilinear polynomials.
// Implementation details in internal/ can be refactored without breaking
// the public API.
//
// # References
//
// - DP23 (Diamond, Posen): https://eprint.iacr.org/2023/1784
// - Binius: https://www.binius.xyz
//
// # License
//
// See LICENSE file in the repository root.
package vybiumtensorpcs
