package sinkhorn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StopReason describes why balancing stopped iterating.
type StopReason int

const (
	// StopNone means iteration has not stopped. It never appears in a
	// Result; it is the zero value of an unfinished run.
	StopNone StopReason = iota

	// StopConverged means every row and column sum of the scaled matrix
	// came within epsilon of one.
	StopConverged

	// StopMaxIterations means the iteration cap was exhausted before the
	// sums converged.
	StopMaxIterations
)

func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "none"
	case StopConverged:
		return "epsilon"
	case StopMaxIterations:
		return "max_iter"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Result holds the outcome of one balancing run. Each Fit call returns a
// fresh Result; nothing is retained on the Scaler.
type Result struct {
	// Balanced is the scaled matrix diag(Row)·P·diag(Col). Its row and
	// column sums are all within epsilon of one when Stop is
	// StopConverged.
	Balanced *mat.Dense

	// Iterations is the number of balancing passes performed.
	Iterations int

	// Stop records why iteration stopped.
	Stop StopReason

	// Row and Col are the row and column scale vectors, the diagonals of
	// the matrices D1 and D2 for which Balanced = D1·P·D2.
	Row, Col *mat.VecDense
}

// D1 materializes the row scale vector as a diagonal matrix.
func (r *Result) D1() *mat.DiagDense { return diagOf(r.Row) }

// D2 materializes the column scale vector as a diagonal matrix.
func (r *Result) D2() *mat.DiagDense { return diagOf(r.Col) }

func diagOf(v *mat.VecDense) *mat.DiagDense {
	diag := make([]float64, v.Len())
	for i := range diag {
		diag[i] = v.AtVec(i)
	}
	return mat.NewDiagDense(len(diag), diag)
}
