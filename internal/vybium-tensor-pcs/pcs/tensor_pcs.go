// Package pcs implements the tensor-product polynomial commitment scheme
// (Construction 3.7 / 3.11 of DP23): commit a batch of multilinear
// polynomials by reshaping their evaluations into a matrix, linear-code
// encoding the rows, and vector-committing the encoded columns; later prove
// an evaluation by mixing the polynomials' partial evaluations against the
// committed rows and opening a random subset of columns.
package pcs

import (
	"math/bits"

	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/challenger"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/codes"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/hash"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/multilinear"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/packed"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/tower"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/vcs"
)

// TensorPCS is a tensor-product polynomial commitment scheme over a fixed
// matrix shape: 2^LogRows rows, each encoded into Code.Len() alphabet-level
// columns. It plays the role of the Rust TensorPCS<P,PA,PI,PE,LC,H,VCS>
// generic struct; the four field-level type parameters there (base,
// alphabet, intermediate, extension) are the four tower.Level fields on
// Config here, dispatched on at runtime instead of monomorphized per type.
type TensorPCS struct {
	cfg    *Config
	code   codes.LinearCode
	vcs    vcs.VectorCommitScheme
	hasher hash.Hasher
}

// Committed is the prover-side state produced by Commit: the row-encoded
// matrix of every polynomial in the batch (needed to answer openings) plus
// the vector commitment's own internal state.
type Committed struct {
	encoded [][]tower.Element // encoded[p] is nRows rows of code.Len() alphabet elements, row-major
	vcs     vcs.Committed
}

// Proof is an evaluation proof: the mixed partial evaluation, the sampled
// column indices, and for each sampled index a VCS opening plus the raw
// opened column values (one alphabet-level value per row, per polynomial).
type Proof struct {
	MixedTPrime multilinear.Extension
	Queries     []int
	VCSProofs   []vcs.Proof
	Columns     [][][]tower.Element // Columns[q][p] has nRows entries
}

func isPow2(n int) bool { return n > 0 && n&(n-1) == 0 }

func log2Exact(n int) int { return bits.Len(uint(n)) - 1 }

func log2Ceil(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// New constructs a TensorPCS from a configuration and a linear code, using a
// Merkle vector commitment scheme sized to the code's length, mirroring the
// Rust constructor's "new_using_groestl_merkle_tree" convenience shape.
func New(cfg *Config, code codes.LinearCode) (*TensorPCS, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.AlphabetLevel != cfg.IntermediateLevel {
		return nil, newErr(ErrInvalidConfig, "AlphabetLevel must equal IntermediateLevel in this implementation")
	}
	if !isPow2(code.Len()) {
		return nil, newErr(ErrCodeLengthPowerOfTwoRequired, "code length %d is not a power of two", code.Len())
	}
	if !isPow2(code.Dim()) {
		return nil, newErr(ErrCodeLengthPowerOfTwoRequired, "code dimension %d is not a power of two", code.Dim())
	}
	h, ok := hash.ByName(cfg.HashFunction)
	if !ok {
		return nil, newErr(ErrUnknown, "unknown hash function %q", cfg.HashFunction)
	}
	scheme := vcs.New(log2Exact(code.Len()), h)
	return &TensorPCS{cfg: cfg.Clone(), code: code, vcs: scheme, hasher: h}, nil
}

// NewBasic builds a TensorPCS where base, alphabet and intermediate fields
// coincide (Construction 3.7's "basic" scheme).
func NewBasic(logRows int, code codes.LinearCode, level, extLevel tower.Level, hashFn string) (*TensorPCS, error) {
	cfg := &Config{
		LogRows:           logRows,
		BaseLevel:         level,
		AlphabetLevel:     level,
		IntermediateLevel: level,
		ExtensionLevel:    extLevel,
		HashFunction:      hashFn,
		NumWorkers:        1,
	}
	return New(cfg, code)
}

// NewBlock builds a TensorPCS where the base field is a strict subfield of
// the shared alphabet/intermediate field (Construction 3.11's "block"
// scheme), used when committed polynomials live over a small field (e.g.
// single bits) but are encoded over a larger alphabet.
func NewBlock(logRows int, code codes.LinearCode, baseLevel, blockLevel, extLevel tower.Level, hashFn string) (*TensorPCS, error) {
	cfg := &Config{
		LogRows:           logRows,
		BaseLevel:         baseLevel,
		AlphabetLevel:     blockLevel,
		IntermediateLevel: blockLevel,
		ExtensionLevel:    extLevel,
		HashFunction:      hashFn,
		NumWorkers:        1,
	}
	return New(cfg, code)
}

func (t *TensorPCS) logBlockSize() int {
	return int(t.cfg.IntermediateLevel) - int(t.cfg.BaseLevel)
}

func (t *TensorPCS) blockSize() int { return 1 << uint(t.logBlockSize()) }

// LogRows returns log2 of the committed matrix's row count.
func (t *TensorPCS) LogRows() int { return t.cfg.LogRows }

// LogCols returns the number of committed Boolean "column" variables, i.e.
// log2 of a matrix row's length in base-field elements before encoding.
func (t *TensorPCS) LogCols() int { return t.code.DimBits() + t.logBlockSize() }

// NVars returns the number of Boolean variables a committable polynomial
// must have: LogRows() low-to-high ordering places the column variables in
// the low bits and the row variables in the high bits.
func (t *TensorPCS) NVars() int { return t.LogRows() + t.LogCols() }

// Commit reshapes each polynomial's evaluations into a 2^LogRows x
// code.Dim() matrix of alphabet elements, encodes every row with the
// linear code, hashes every encoded column, and commits the batch of
// per-polynomial digest vectors.
func (t *TensorPCS) Commit(polys []multilinear.Extension) (vcs.Commitment, Committed, error) {
	nRows := 1 << uint(t.LogRows())
	dim := t.code.Dim()
	codeLen := t.code.Len()

	encoded := make([][]tower.Element, len(polys))
	columns := make([][]hash.Digest, len(polys))

	for p, poly := range polys {
		if poly.NVars() != t.NVars() {
			return vcs.Commitment{}, Committed{}, newErr(ErrIncorrectPolynomialSize,
				"polynomial %d has %d variables, expected %d", p, poly.NVars(), t.NVars())
		}
		if poly.Level() != t.cfg.BaseLevel {
			return vcs.Commitment{}, Committed{}, newErr(ErrIncorrectPolynomialSize,
				"polynomial %d is at tower level %d, expected %d", p, poly.Level(), t.cfg.BaseLevel)
		}

		interVec, err := poly.Evals().Reinterpret(t.cfg.IntermediateLevel)
		if err != nil {
			return vcs.Commitment{}, Committed{}, wrapErr(ErrUnalignedMessage, err, "polynomial %d cannot be reinterpreted at the alphabet level", p)
		}
		if interVec.Width() != nRows*dim {
			return vcs.Commitment{}, Committed{}, newErr(ErrUnalignedMessage,
				"polynomial %d reinterprets to %d alphabet elements, expected %d", p, interVec.Width(), nRows*dim)
		}

		data := make([]tower.Element, nRows*codeLen)
		for r := 0; r < nRows; r++ {
			for i := 0; i < dim; i++ {
				data[r*codeLen+i] = interVec.Get(r*dim + i)
			}
		}
		if err := t.code.EncodeBatchInplace(data, t.LogRows()); err != nil {
			return vcs.Commitment{}, Committed{}, wrapErr(ErrEncode, err, "encoding polynomial %d", p)
		}
		encoded[p] = data

		digests := make([]hash.Digest, codeLen)
		col := packed.New(t.cfg.IntermediateLevel, nRows)
		for j := 0; j < codeLen; j++ {
			for r := 0; r < nRows; r++ {
				col.Set(r, data[r*codeLen+j])
			}
			digests[j] = t.hasher.HashColumn(col)
		}
		columns[p] = digests
	}

	commitment, vcsCommitted, err := t.vcs.CommitBatch(columns)
	if err != nil {
		return vcs.Commitment{}, Committed{}, wrapErr(ErrVectorCommit, err, "committing encoded columns")
	}
	return commitment, Committed{encoded: encoded, vcs: vcsCommitted}, nil
}

// mixTPrimes forms the batched linear combination Σ_p mixingCoeffs[p] *
// tPrimes[p], a single Extension over logNCols variables, used to fold a
// batch of per-polynomial partial evaluations into one consistency check.
func mixTPrimes(logNCols int, tPrimes []multilinear.Extension, mixingCoeffs []tower.Element) (multilinear.Extension, error) {
	if len(tPrimes) != len(mixingCoeffs) {
		return multilinear.Extension{}, newErr(ErrNumBatchedMismatch, "%d partial evaluations but %d mixing coefficients", len(tPrimes), len(mixingCoeffs))
	}
	if len(tPrimes) == 0 {
		return multilinear.Extension{}, newErr(ErrIncorrectPolynomialSize, "no partial evaluations to mix")
	}
	size := 1 << uint(logNCols)
	level := mixingCoeffs[0].Level()
	out := packed.New(level, size)
	for i := 0; i < size; i++ {
		acc := tower.Zero(level)
		for p, tp := range tPrimes {
			acc = acc.Add(tp.Evals().Get(i).Mul(mixingCoeffs[p]))
		}
		out.Set(i, acc)
	}
	mixed, err := multilinear.FromValues(out)
	if err != nil {
		return multilinear.Extension{}, newErr(ErrUnknown, "mixing t-primes: %v", err)
	}
	return mixed, nil
}

func extensionToSlice(e multilinear.Extension) []tower.Element {
	out := make([]tower.Element, e.Evals().Width())
	for i := range out {
		out[i] = e.Evals().Get(i)
	}
	return out
}

// encodeExt extends a vector of code.Dim()*blockSize() extension-field
// "column" coordinates into code.Len()*blockSize() coordinates, by
// splitting it into blockSize() interleaved base-field stripes, encoding
// each stripe independently with the linear code (lifted to the extension
// level), and re-interleaving the results. This plays the role of the
// two square-transposes the original construction uses around a single
// batch encode: those transposes exist to reinterpret packed SIMD words in
// place, a concern this element-addressed representation does not have, so
// the per-stripe loop achieves the identical mathematical effect directly.
func (t *TensorPCS) encodeExt(tPrime []tower.Element) ([]tower.Element, error) {
	dim := t.code.Dim()
	codeLen := t.code.Len()
	block := t.blockSize()
	if len(tPrime) != dim*block {
		return nil, newErr(ErrPartialEvaluationSize, "t-prime has %d entries, expected %d", len(tPrime), dim*block)
	}

	out := make([]tower.Element, codeLen*block)
	stripe := make([]tower.Element, dim)
	for s := 0; s < block; s++ {
		for d := 0; d < dim; d++ {
			stripe[d] = tPrime[d*block+s]
		}
		encodedStripe, err := t.code.EncodeExtended(stripe)
		if err != nil {
			return nil, wrapErr(ErrEncode, err, "encoding stripe %d of mixed t-prime", s)
		}
		for d := 0; d < codeLen; d++ {
			out[d*block+s] = encodedStripe[d]
		}
	}
	return out, nil
}

// ProveEvaluation proves that the polynomials committed in committed
// jointly evaluate at point to the values the verifier will separately
// recover via VerifyEvaluation's mixing.
func (t *TensorPCS) ProveEvaluation(ch challenger.Challenger, committed Committed, polys []multilinear.Extension, point []tower.Element) (Proof, error) {
	if len(point) != t.NVars() {
		return Proof{}, newErr(ErrIncorrectQuerySize, "query has %d coordinates, expected %d", len(point), t.NVars())
	}
	logNCols := t.LogCols()
	queryHigh := point[logNCols:]

	highQuery := multilinear.ExpandQuery(t.cfg.ExtensionLevel, queryHigh)
	tPrimes := make([]multilinear.Extension, len(polys))
	for p, poly := range polys {
		tp, err := poly.EvaluatePartialHigh(highQuery)
		if err != nil {
			return Proof{}, wrapErr(ErrIncorrectPartialEvaluation, err, "partial evaluation of polynomial %d", p)
		}
		tPrimes[p] = tp
	}

	mixingBits := log2Ceil(len(polys))
	mixingChallenges := ch.SampleVec(t.cfg.ExtensionLevel, mixingBits)
	mixingCoeffs := multilinear.ExpandQuery(t.cfg.ExtensionLevel, mixingChallenges).Expansion()[:len(polys)]

	mixedTPrime, err := mixTPrimes(logNCols, tPrimes, mixingCoeffs)
	if err != nil {
		return Proof{}, err
	}
	ch.ObserveSlice(mixedTPrime.Evals())

	codeLenBits := log2Exact(t.code.Len())
	nQueries := t.code.NTestQueries()
	queries := make([]int, nQueries)
	for i := range queries {
		queries[i] = ch.SampleBits(codeLenBits)
	}

	vcsProofs := make([]vcs.Proof, nQueries)
	columns := make([][][]tower.Element, nQueries)
	for qi, j := range queries {
		proof, err := t.vcs.ProveBatchOpening(committed.vcs, j)
		if err != nil {
			return Proof{}, wrapErr(ErrVectorCommit, err, "opening column %d", j)
		}
		vcsProofs[qi] = proof

		nRows := 1 << uint(t.LogRows())
		codeLen := t.code.Len()
		cols := make([][]tower.Element, len(committed.encoded))
		for p, data := range committed.encoded {
			col := make([]tower.Element, nRows)
			for r := 0; r < nRows; r++ {
				col[r] = data[r*codeLen+j]
			}
			cols[p] = col
		}
		columns[qi] = cols
	}

	return Proof{
		MixedTPrime: mixedTPrime,
		Queries:     queries,
		VCSProofs:   vcsProofs,
		Columns:     columns,
	}, nil
}

func (t *TensorPCS) checkProofShape(proof Proof, nPolys int) error {
	nQueries := t.code.NTestQueries()
	if len(proof.VCSProofs) != nQueries || len(proof.Queries) != nQueries || len(proof.Columns) != nQueries {
		return newErr(ErrNumberOfOpeningProofs, "proof has %d opened columns, expected %d", len(proof.VCSProofs), nQueries)
	}
	if proof.MixedTPrime.NVars() != t.LogCols() {
		return newErr(ErrIncorrectPartialEvaluation, "mixed t-prime has %d variables, expected %d", proof.MixedTPrime.NVars(), t.LogCols())
	}
	nRows := 1 << uint(t.LogRows())
	for qi, cols := range proof.Columns {
		if len(cols) != nPolys {
			return newErr(ErrOpenedColumnSize, "opened column set %d has %d polynomials, expected %d", qi, len(cols), nPolys)
		}
		for p, col := range cols {
			if len(col) != nRows {
				return newErr(ErrOpenedColumnSize, "opened column %d/%d has %d rows, expected %d", qi, p, len(col), nRows)
			}
		}
	}
	return nil
}

// VerifyEvaluation checks proof against commitment: that the polynomials
// committed there jointly evaluate at point to values.
func (t *TensorPCS) VerifyEvaluation(ch challenger.Challenger, commitment vcs.Commitment, point []tower.Element, proof Proof, values []tower.Element) error {
	if len(point) != t.NVars() {
		return newErr(ErrIncorrectQuerySize, "query has %d coordinates, expected %d", len(point), t.NVars())
	}
	nPolys := len(values)
	if err := t.checkProofShape(proof, nPolys); err != nil {
		return err
	}

	logNCols := t.LogCols()
	queryLow := point[:logNCols]
	queryHigh := point[logNCols:]

	mixingBits := log2Ceil(nPolys)
	mixingChallenges := ch.SampleVec(t.cfg.ExtensionLevel, mixingBits)
	mixingCoeffs := multilinear.ExpandQuery(t.cfg.ExtensionLevel, mixingChallenges).Expansion()[:nPolys]

	claimed := tower.Zero(t.cfg.ExtensionLevel)
	for p, v := range values {
		claimed = claimed.Add(mixingCoeffs[p].Mul(v))
	}

	ch.ObserveSlice(proof.MixedTPrime.Evals())

	lowQuery := multilinear.ExpandQuery(t.cfg.ExtensionLevel, queryLow)
	got, err := proof.MixedTPrime.Evaluate(lowQuery)
	if err != nil {
		return wrapErr(ErrIncorrectEvaluation, err, "evaluating mixed t-prime")
	}
	if !got.Equal(claimed) {
		return newErr(ErrIncorrectEvaluation, "mixed t-prime does not evaluate to the claimed value")
	}

	uPrime, err := t.encodeExt(extensionToSlice(proof.MixedTPrime))
	if err != nil {
		return err
	}

	codeLenBits := log2Exact(t.code.Len())
	nQueries := t.code.NTestQueries()
	highQuery := multilinear.ExpandQuery(t.cfg.ExtensionLevel, queryHigh)
	block := t.blockSize()

	for qi := 0; qi < nQueries; qi++ {
		j := ch.SampleBits(codeLenBits)
		if j != proof.Queries[qi] {
			return newErr(ErrIncorrectQuerySize, "sampled column index %d does not match proof's %d", j, proof.Queries[qi])
		}

		leaves := make([]hash.Digest, nPolys)
		stripeMix := make([]tower.Element, block)
		for s := range stripeMix {
			stripeMix[s] = tower.Zero(t.cfg.ExtensionLevel)
		}

		for p, col := range proof.Columns[qi] {
			packedCol := packed.New(t.cfg.IntermediateLevel, len(col))
			for r, v := range col {
				packedCol.Set(r, v)
			}
			leaves[p] = t.hasher.HashColumn(packedCol)

			baseCol, err := packedCol.Reinterpret(t.cfg.BaseLevel)
			if err != nil {
				return wrapErr(ErrUnalignedMessage, err, "reinterpreting opened column %d for polynomial %d", j, p)
			}
			for s := 0; s < block; s++ {
				acc := tower.Zero(t.cfg.ExtensionLevel)
				for r := 0; r < len(col); r++ {
					acc = acc.Add(baseCol.Get(r*block+s).Lift(t.cfg.ExtensionLevel).Mul(highQuery.Expansion()[r]))
				}
				stripeMix[s] = stripeMix[s].Add(mixingCoeffs[p].Mul(acc))
			}
		}

		if err := t.vcs.VerifyBatchOpening(commitment, j, proof.VCSProofs[qi], leaves); err != nil {
			return wrapErr(ErrVectorCommit, err, "verifying opening of column %d", j)
		}

		for s := 0; s < block; s++ {
			if !stripeMix[s].Equal(uPrime[j*block+s]) {
				return newErr(ErrIncorrectPartialEvaluation, "column %d stripe %d is inconsistent with the encoded mixed t-prime", j, s)
			}
		}
	}

	return nil
}
