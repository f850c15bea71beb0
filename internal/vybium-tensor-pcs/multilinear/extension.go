package multilinear

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/packed"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/tower"
)

// parallelThreshold is the evaluation-table size below which Evaluate and
// EvaluatePartialHigh run serially rather than paying goroutine overhead,
// matching the chunking idiom's own small-batch fallback.
const parallelThreshold = 1024

// Extension is the dense evaluation table of a multilinear polynomial over
// the Boolean hypercube {0,1}^NVars, stored as a packed vector of tower
// field elements.
type Extension struct {
	evals packed.Vector
}

// FromValues wraps a packed vector of evaluations as a multilinear
// extension. The vector's width must be a power of two.
func FromValues(evals packed.Vector) (Extension, error) {
	if evals.Width() == 0 || evals.Width()&(evals.Width()-1) != 0 {
		return Extension{}, fmt.Errorf("multilinear: evaluation count %d is not a power of two", evals.Width())
	}
	return Extension{evals: evals}, nil
}

// NVars returns the number of Boolean variables.
func (e Extension) NVars() int {
	n := 0
	for w := e.evals.Width(); w > 1; w >>= 1 {
		n++
	}
	return n
}

// Evals returns the underlying packed evaluation table.
func (e Extension) Evals() packed.Vector {
	return e.evals
}

// Level returns the tower level of the evaluation table's elements.
func (e Extension) Level() tower.Level {
	return e.evals.Level()
}

func chunkCount(n int) int {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	return workers
}

// Evaluate computes the polynomial's value at the point whose tensor
// expansion is query, lifting each table entry into query's level before
// the inner product. len(query.Expansion()) must equal 1<<NVars().
func (e Extension) Evaluate(query Query) (tower.Element, error) {
	n := e.evals.Width()
	coeffs := query.Expansion()
	if len(coeffs) != n {
		return tower.Element{}, fmt.Errorf("multilinear: query expands to %d coefficients, expected %d", len(coeffs), n)
	}
	level := query.Level()

	if n < parallelThreshold {
		acc := tower.Zero(level)
		for i := 0; i < n; i++ {
			acc = acc.Add(e.evals.Get(i).Lift(level).Mul(coeffs[i]))
		}
		return acc, nil
	}

	workers := chunkCount(n)
	chunkSize := (n + workers - 1) / workers
	partials := make([]tower.Element, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			start := workerID * chunkSize
			if start >= n {
				partials[workerID] = tower.Zero(level)
				return
			}
			end := start + chunkSize
			if end > n {
				end = n
			}
			acc := tower.Zero(level)
			for i := start; i < end; i++ {
				acc = acc.Add(e.evals.Get(i).Lift(level).Mul(coeffs[i]))
			}
			partials[workerID] = acc
		}(w)
	}
	wg.Wait()

	acc := tower.Zero(level)
	for _, p := range partials {
		acc = acc.Add(p)
	}
	return acc, nil
}

// EvaluatePartialHigh folds the high-order variables (the last
// query.NVars() Boolean variables of the table) against query's tensor
// expansion, returning a new Extension over the remaining low-order
// variables. This implements the "partial evaluation" step used to reduce
// a multilinear polynomial to a smaller one sharing the same vector space
// as a row of a tensor-product commitment.
func (e Extension) EvaluatePartialHigh(query Query) (Extension, error) {
	n := e.evals.Width()
	coeffs := query.Expansion()
	if n%len(coeffs) != 0 {
		return Extension{}, fmt.Errorf("multilinear: table size %d not divisible by %d-coefficient partial query", n, len(coeffs))
	}
	lowSize := n / len(coeffs)
	level := query.Level()

	out := packed.New(level, lowSize)

	evalAt := func(lowIdx int) tower.Element {
		acc := tower.Zero(level)
		for hi, c := range coeffs {
			acc = acc.Add(e.evals.Get(hi*lowSize+lowIdx).Lift(level).Mul(c))
		}
		return acc
	}

	if lowSize < parallelThreshold {
		for i := 0; i < lowSize; i++ {
			out.Set(i, evalAt(i))
		}
		return Extension{evals: out}, nil
	}

	workers := chunkCount(lowSize)
	chunkSize := (lowSize + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			start := workerID * chunkSize
			if start >= lowSize {
				return
			}
			end := start + chunkSize
			if end > lowSize {
				end = lowSize
			}
			for i := start; i < end; i++ {
				out.Set(i, evalAt(i))
			}
		}(w)
	}
	wg.Wait()

	return Extension{evals: out}, nil
}
