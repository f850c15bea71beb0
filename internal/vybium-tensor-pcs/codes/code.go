// Package codes implements the linear error-correcting codes used to encode
// committed matrix rows before hashing, following the evaluation-domain
// construction of a Reed-Solomon code but over tower field arithmetic
// (characteristic 2) rather than a big.Int prime field.
package codes

import "github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/tower"

// LinearCode is a systematic linear code RS[F, D, rho]: Dim() message
// symbols extend to Len() codeword symbols at a fixed rate rho =
// Dim()/Len(), with NTestQueries() columns sampled during verification.
type LinearCode interface {
	// Len is the codeword length n.
	Len() int
	// Dim is the message length k.
	Dim() int
	// DimBits is log2(Dim()).
	DimBits() int
	// NTestQueries is how many encoded columns the verifier samples.
	NTestQueries() int
	// EncodeBatchInplace treats data as (1<<logBatchSize) consecutive rows
	// of Len() elements, whose first Dim() entries hold the message, and
	// overwrites each row with its full codeword.
	EncodeBatchInplace(data []tower.Element, logBatchSize int) error
	// EncodeExtended encodes a single message of Dim() elements living at
	// any tower level at or above the code's own level, lifting the
	// generator matrix into that level. Used to encode extension-field
	// values (e.g. a verifier's mixed partial evaluation) that were never
	// part of the base committed matrix.
	EncodeExtended(message []tower.Element) ([]tower.Element, error)
}
