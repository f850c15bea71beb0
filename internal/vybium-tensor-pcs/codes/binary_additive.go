package codes

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/tower"
)

// rowParallelThreshold is the row count at or above which EncodeBatchInplace
// splits work across goroutines, mirroring the chunked-worker/WaitGroup
// idiom used for batch field arithmetic elsewhere in this module.
const rowParallelThreshold = 32

// BinaryAdditiveCode is a systematic Reed-Solomon-flavored code over a
// tower field: a message of Dim() symbols, read as the evaluations of a
// polynomial of degree < Dim() at the first Dim() points of an evaluation
// domain, is encoded by evaluating that same polynomial at all Len() domain
// points. The domain is the sequence of field elements 0, 1, 2, ... since
// characteristic-2 addition has no sign to worry about.
type BinaryAdditiveCode struct {
	level        tower.Level
	dim          int
	dimBits      int
	length       int
	nTestQueries int
	domain       []tower.Element
	genMatrix    [][]tower.Element // genMatrix[j][i]: coefficient of message symbol i in codeword symbol j
}

// NewBinaryAdditiveCode builds a code with message length 2^logDim and
// codeword length (2^logDim)<<logInvRate, i.e. rate 1/2^logInvRate.
func NewBinaryAdditiveCode(level tower.Level, logDim, logInvRate, nTestQueries int) (*BinaryAdditiveCode, error) {
	if logDim < 0 || logInvRate < 0 {
		return nil, fmt.Errorf("codes: logDim and logInvRate must be non-negative")
	}
	dim := 1 << uint(logDim)
	length := dim << uint(logInvRate)
	if length > (1 << uint(level.Bits())) {
		return nil, fmt.Errorf("codes: codeword length %d exceeds the %d-element domain available at tower level %d", length, 1<<uint(level.Bits()), level)
	}

	domain := make([]tower.Element, length)
	for i := range domain {
		domain[i] = tower.FromUint64(level, uint64(i))
	}

	genMatrix, err := buildGeneratorMatrix(level, domain, dim)
	if err != nil {
		return nil, err
	}

	return &BinaryAdditiveCode{
		level:        level,
		dim:          dim,
		dimBits:      logDim,
		length:       length,
		nTestQueries: nTestQueries,
		domain:       domain,
		genMatrix:    genMatrix,
	}, nil
}

// buildGeneratorMatrix computes, for every output domain point x_j, the
// evaluations of the dim Lagrange basis polynomials built over the first
// dim domain points: genMatrix[j][i] = L_i(x_j).
func buildGeneratorMatrix(level tower.Level, domain []tower.Element, dim int) ([][]tower.Element, error) {
	msgPoints := domain[:dim]

	// Precompute, for each i, the product of (x_i - x_k) for k != i, inverted.
	denomInv := make([]tower.Element, dim)
	for i := 0; i < dim; i++ {
		acc := tower.One(level)
		for k := 0; k < dim; k++ {
			if k == i {
				continue
			}
			diff := msgPoints[i].Sub(msgPoints[k])
			if diff.IsZero() {
				return nil, fmt.Errorf("codes: duplicate message domain points at %d and %d", i, k)
			}
			acc = acc.Mul(diff)
		}
		inv, ok := acc.Invert()
		if !ok {
			return nil, fmt.Errorf("codes: degenerate Lagrange denominator at index %d", i)
		}
		denomInv[i] = inv
	}

	matrix := make([][]tower.Element, len(domain))
	for j, xj := range domain {
		row := make([]tower.Element, dim)
		for i := 0; i < dim; i++ {
			acc := denomInv[i]
			for k := 0; k < dim; k++ {
				if k == i {
					continue
				}
				acc = acc.Mul(xj.Sub(msgPoints[k]))
			}
			row[i] = acc
		}
		matrix[j] = row
	}
	return matrix, nil
}

func (c *BinaryAdditiveCode) Len() int          { return c.length }
func (c *BinaryAdditiveCode) Dim() int          { return c.dim }
func (c *BinaryAdditiveCode) DimBits() int      { return c.dimBits }
func (c *BinaryAdditiveCode) NTestQueries() int { return c.nTestQueries }

// Level returns the tower level the code's alphabet elements live at.
func (c *BinaryAdditiveCode) Level() tower.Level { return c.level }

func (c *BinaryAdditiveCode) encodeRow(row []tower.Element) []tower.Element {
	out := make([]tower.Element, c.length)
	for j := 0; j < c.length; j++ {
		acc := tower.Zero(c.level)
		genRow := c.genMatrix[j]
		for i := 0; i < c.dim; i++ {
			acc = acc.Add(row[i].Mul(genRow[i]))
		}
		out[j] = acc
	}
	return out
}

// EncodeExtended encodes a single message of Dim() elements at any tower
// level at or above the code's own level, lifting each generator-matrix
// coefficient into that level before multiplying.
func (c *BinaryAdditiveCode) EncodeExtended(message []tower.Element) ([]tower.Element, error) {
	if len(message) != c.dim {
		return nil, fmt.Errorf("codes: message has %d elements, expected %d", len(message), c.dim)
	}
	level := message[0].Level()
	out := make([]tower.Element, c.length)
	for j := 0; j < c.length; j++ {
		acc := tower.Zero(level)
		genRow := c.genMatrix[j]
		for i := 0; i < c.dim; i++ {
			acc = acc.Add(message[i].Mul(genRow[i].Lift(level)))
		}
		out[j] = acc
	}
	return out, nil
}

func (c *BinaryAdditiveCode) EncodeBatchInplace(data []tower.Element, logBatchSize int) error {
	rows := 1 << uint(logBatchSize)
	if len(data) != rows*c.length {
		return fmt.Errorf("codes: data length %d does not match %d rows of %d elements", len(data), rows, c.length)
	}

	encodeRange := func(start, end int) {
		for r := start; r < end; r++ {
			base := r * c.length
			out := c.encodeRow(data[base : base+c.dim])
			copy(data[base:base+c.length], out)
		}
	}

	if rows < rowParallelThreshold {
		encodeRange(0, rows)
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	chunkSize := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= rows {
			break
		}
		end := start + chunkSize
		if end > rows {
			end = rows
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			encodeRange(start, end)
		}(start, end)
	}
	wg.Wait()
	return nil
}
