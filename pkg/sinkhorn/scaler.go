// Package sinkhorn balances non-negative square matrices with the
// Sinkhorn-Knopp algorithm.
//
// Alternately rescaling the rows and columns of a matrix with total
// support converges to a doubly stochastic matrix diag(r)·P·diag(c),
// in which every row and every column sums to one. See the original
// paper at http://msp.org/pjm/1967/21-2/pjm-v21-n2-p14-s.pdf.
package sinkhorn

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"k3l.io/go-sinkhorn/pkg/matutil"
)

// Default Scaler parameters, used by New unless overridden with options.
const (
	DefaultMaxIterations = 1000
	DefaultEpsilon       = 1e-3
)

// A Scaler balances matrices. Its configuration is frozen at New time,
// so one Scaler is safe for concurrent use by multiple goroutines.
type Scaler struct {
	maxIterations int
	epsilon       float64
	logger        zerolog.Logger
}

// New creates a Scaler with the given options.
//
// New returns an error wrapping ErrInvalidConfiguration
// if the iteration cap is not positive
// or the epsilon does not lie strictly between 0 and 1.
func New(opts ...Option) (*Scaler, error) {
	s := &Scaler{
		maxIterations: DefaultMaxIterations,
		epsilon:       DefaultEpsilon,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxIterations <= 0 {
		return nil, fmt.Errorf("%w: max iterations %d is not positive",
			ErrInvalidConfiguration, s.maxIterations)
	}
	// written this way so that a NaN epsilon also fails
	if !(s.epsilon > 0 && s.epsilon < 1) {
		return nil, fmt.Errorf("%w: epsilon %#v is outside (0, 1)",
			ErrInvalidConfiguration, s.epsilon)
	}
	return s, nil
}

// MaxIterations returns the iteration cap.
func (s *Scaler) MaxIterations() int { return s.maxIterations }

// Epsilon returns the convergence tolerance.
func (s *Scaler) Epsilon() float64 { return s.epsilon }

// Fit balances p into a doubly stochastic matrix.
//
// p must be non-empty, square, and free of negative entries;
// otherwise Fit returns an error wrapping ErrInvalidInput.
// Fit finds positive diagonal matrices D1 and D2 such that D1·p·D2
// has every row and column sum within epsilon of one, and returns
// the balanced matrix together with the diagonals of D1 and D2.
//
// Convergence is guaranteed only if p has total support.
// HasSupport runs first and logs a warning when p fails one of its
// checks, but balancing proceeds regardless; on such input the
// returned matrix may contain Inf or NaN entries.
//
// Fit does not modify p and may be called concurrently on one Scaler.
func (s *Scaler) Fit(p mat.Matrix) (*Result, error) {
	tm0 := time.Now()
	n, m := p.Dims()
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrInvalidInput)
	}
	if n != m {
		return nil, fmt.Errorf("%w: matrix is %dx%d, want square",
			ErrInvalidInput, n, m)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := p.At(i, j); v < 0 {
				return nil, NegativeEntryError{Row: i, Col: j, Value: v}
			}
		}
	}
	// diagnostics only, balancing proceeds either way
	s.HasSupport(p)

	work := mat.DenseCopyOf(p)
	workT := work.T()
	maxThresh := 1 + s.epsilon
	minThresh := 1 - s.epsilon

	// Warm-start r and c, the diagonals of D1 and D2,
	// with one half-pass each way from uniform row weights.
	r := matutil.Ones(n)
	c := mat.NewVecDense(n, nil)
	prod := mat.NewVecDense(n, nil)
	prod.MulVec(workT, r)
	matutil.Reciprocal(c, prod)
	prod.MulVec(work, c)
	matutil.Reciprocal(r, prod)

	scaled := mat.DenseCopyOf(work)
	tm1 := time.Now()
	durPrep, tm0 := tm1.Sub(tm0), tm1

	iterations := 0
	stop := StopNone
	rowSums := matutil.RowSums(scaled)
	colSums := matutil.ColSums(scaled)
	for matutil.AnyOutside(rowSums, minThresh, maxThresh) ||
		matutil.AnyOutside(colSums, minThresh, maxThresh) {
		s.logger.Trace().
			Int("iteration", iterations).
			Float64("worstDeviation", worstDeviation(rowSums, colSums)).
			Msg("one iteration")
		prod.MulVec(workT, r)
		matutil.Reciprocal(c, prod)
		prod.MulVec(work, c)
		matutil.Reciprocal(r, prod)
		matutil.ScaleRowsCols(scaled, r, work, c)
		iterations++
		if iterations >= s.maxIterations {
			stop = StopMaxIterations
			break
		}
		rowSums = matutil.RowSums(scaled)
		colSums = matutil.ColSums(scaled)
	}
	if stop == StopNone {
		stop = StopConverged
	}
	// recompute from the pristine copy so that the zero-iteration case
	// still reflects the warm-start diagonals
	matutil.ScaleRowsCols(scaled, r, work, c)
	durIter := time.Since(tm0)
	s.logger.Debug().
		Int("dim", n).
		Float64("epsilon", s.epsilon).
		Int("maxIterations", s.maxIterations).
		Int("iterations", iterations).
		Stringer("stop", stop).
		Dur("durPrep", durPrep).
		Dur("durIter", durIter).
		Msg("finished")
	return &Result{
		Balanced:   scaled,
		Iterations: iterations,
		Stop:       stop,
		Row:        r,
		Col:        c,
	}, nil
}

func worstDeviation(sums ...*mat.VecDense) float64 {
	worst := 0.0
	for _, v := range sums {
		for i := 0; i < v.Len(); i++ {
			worst = math.Max(worst, math.Abs(v.AtVec(i)-1))
		}
	}
	return worst
}
