package vybiumtensorpcs

import (
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/challenger"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/codes"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/multilinear"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/packed"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/pcs"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/tower"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/vcs"
)

func packedFromSlice(level Level, elems []Element) packed.Vector {
	v := packed.New(level, len(elems))
	for i, e := range elems {
		v.Set(i, e)
	}
	return v
}

// Level is a binary tower field level: Level0 is GF(2), Level7 is GF(2^128).
type Level = tower.Level

const (
	Level0 = tower.Level0
	Level1 = tower.Level1
	Level2 = tower.Level2
	Level3 = tower.Level3
	Level7 = tower.Level7
)

// Element is a single binary tower field element.
type Element = tower.Element

// Polynomial is a multilinear polynomial's dense evaluation table.
type Polynomial = multilinear.Extension

// NewPolynomial wraps a packed vector of Boolean-hypercube evaluations as
// a Polynomial. Its width must be a power of two.
func NewPolynomial(evals []Element, level Level) (Polynomial, error) {
	v := packedFromSlice(level, evals)
	return multilinear.FromValues(v)
}

// NewElement constructs a tower field element at the given level from a
// raw integer value (masked to the level's bit width). Use Level7's
// FromHalves-equivalent via NewExtensionElement for 128-bit values.
func NewElement(level Level, v uint64) Element {
	return tower.FromUint64(level, v)
}

// NewExtensionElement constructs a Level7 (128-bit) element from its two
// 64-bit halves.
func NewExtensionElement(lo, hi uint64) Element {
	return tower.FromHalves(lo, hi)
}

// EvaluatePolynomial evaluates poly at point, which must have exactly
// poly's NVars() coordinates.
func EvaluatePolynomial(poly Polynomial, point []Element) (Element, error) {
	if len(point) == 0 {
		return poly.Evaluate(multilinear.ExpandQuery(poly.Level(), nil))
	}
	query := multilinear.ExpandQuery(point[0].Level(), point)
	return poly.Evaluate(query)
}

// Config collects the tower levels and ambient parameters a Scheme is
// built from.
type Config = pcs.Config

// DefaultConfig returns a small configuration suitable for examples and
// tests: the basic scheme at tower level 3 with 128-bit extension
// challenges.
func DefaultConfig() *Config {
	return pcs.DefaultConfig()
}

// LinearCode is a systematic error-correcting code used to encode
// committed matrix rows before hashing.
type LinearCode = codes.LinearCode

// NewReedSolomonCode builds a systematic evaluation-domain code with
// message length 2^logDim and codeword length (2^logDim)<<logInvRate, at
// the configuration's alphabet level.
func NewReedSolomonCode(cfg *Config, logDim, logInvRate, nTestQueries int) (LinearCode, error) {
	return codes.NewBinaryAdditiveCode(cfg.AlphabetLevel, logDim, logInvRate, nTestQueries)
}

// Transcript is a Fiat-Shamir transcript shared between a prover and a
// verifier; Fork it once per role so they replay identical
// observe/sample sequences from a common prefix.
type Transcript struct {
	inner *challenger.Sha3Challenger
}

// NewTranscript returns a fresh transcript with an empty initial state.
func NewTranscript() *Transcript {
	return &Transcript{inner: challenger.NewSha3Challenger()}
}

// Fork returns an independent copy of the transcript's current state.
func (t *Transcript) Fork() challenger.Challenger {
	return t.inner.Clone()
}

// Commitment is the public root of a polynomial commitment.
type Commitment = vcs.Commitment

// Committed is the prover-side state retained after Scheme.Commit.
type Committed = pcs.Committed

// Proof is an evaluation proof produced by Scheme.Prove.
type Proof = pcs.Proof

// Scheme is a tensor-product polynomial commitment scheme over a fixed
// matrix shape.
type Scheme struct {
	inner *pcs.TensorPCS
}

// NewScheme builds a Scheme from an explicit configuration and code.
func NewScheme(cfg *Config, code LinearCode) (*Scheme, error) {
	inner, err := pcs.New(cfg, code)
	if err != nil {
		return nil, err
	}
	return &Scheme{inner: inner}, nil
}

// NewBasicScheme builds a Scheme where base, alphabet and intermediate
// fields coincide (Construction 3.7).
func NewBasicScheme(logRows int, code LinearCode, level, extLevel Level, hashFunction string) (*Scheme, error) {
	inner, err := pcs.NewBasic(logRows, code, level, extLevel, hashFunction)
	if err != nil {
		return nil, err
	}
	return &Scheme{inner: inner}, nil
}

// NewBlockScheme builds a Scheme where the base field is a strict
// subfield of the shared alphabet/intermediate field (Construction 3.11).
func NewBlockScheme(logRows int, code LinearCode, baseLevel, blockLevel, extLevel Level, hashFunction string) (*Scheme, error) {
	inner, err := pcs.NewBlock(logRows, code, baseLevel, blockLevel, extLevel, hashFunction)
	if err != nil {
		return nil, err
	}
	return &Scheme{inner: inner}, nil
}

// NVars returns the number of Boolean variables a committable polynomial
// must have under this scheme.
func (s *Scheme) NVars() int { return s.inner.NVars() }

// Commit reshapes each polynomial's evaluations into a matrix, encodes
// every row, hashes every encoded column, and commits the batch.
func (s *Scheme) Commit(polys []Polynomial) (Commitment, Committed, error) {
	return s.inner.Commit(polys)
}

// Prove proves that the polynomials bound in committed jointly evaluate
// at point to the values Verify will independently recover.
func (s *Scheme) Prove(transcript challenger.Challenger, committed Committed, polys []Polynomial, point []Element) (Proof, error) {
	return s.inner.ProveEvaluation(transcript, committed, polys, point)
}

// Verify checks proof against commitment: that the polynomials committed
// there jointly evaluate at point to values.
func (s *Scheme) Verify(transcript challenger.Challenger, commitment Commitment, point []Element, proof Proof, values []Element) error {
	return s.inner.VerifyEvaluation(transcript, commitment, point, proof, values)
}
