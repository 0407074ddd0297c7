// Package matutil provides small dense-matrix helpers over gonum/mat.
package matutil

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrEmpty signals a matrix with no rows or no columns.
var ErrEmpty = errors.New("empty matrix")

// ErrRagged signals rows of unequal length.
var ErrRagged = errors.New("ragged rows")

// FromRows builds a dense matrix from row slices.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w",
				i, len(row), cols, ErrRagged)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// Must returns r, panicking if err is not nil.  It turns a (value, error)
// pair into a bare value for initializers and examples where the error
// cannot occur.
func Must[R any](r R, err error) R {
	if err != nil {
		panic(err)
	}
	return r
}

// Ones returns a length-n vector of ones.
func Ones(n int) *mat.VecDense {
	data := make([]float64, n)
	for i := range data {
		data[i] = 1
	}
	return mat.NewVecDense(n, data)
}

// Reciprocal stores the elementwise reciprocal of v into dst.
//
// Division follows IEEE semantics: a zero element yields +Inf and a NaN
// element propagates. Nothing is trapped or clamped.
func Reciprocal(dst, v *mat.VecDense) {
	if dst.Len() != v.Len() {
		panic(mat.ErrShape)
	}
	for i := 0; i < v.Len(); i++ {
		dst.SetVec(i, 1/v.AtVec(i))
	}
}

// RowSums returns the row sums of m, computed as the product m·1.
func RowSums(m mat.Matrix) *mat.VecDense {
	_, cols := m.Dims()
	var v mat.VecDense
	v.MulVec(m, Ones(cols))
	return &v
}

// ColSums returns the column sums of m, computed as the product mᵗ·1.
func ColSums(m mat.Matrix) *mat.VecDense {
	rows, _ := m.Dims()
	var v mat.VecDense
	v.MulVec(m.T(), Ones(rows))
	return &v
}

// ScaleRowsCols stores diag(r)·m·diag(c) into dst, scaling row i of m by
// r[i] and column j by c[j]. It is the O(N²) broadcast equivalent of the
// two diagonal matrix products.
func ScaleRowsCols(dst *mat.Dense, r *mat.VecDense, m mat.Matrix, c *mat.VecDense) {
	rows, cols := m.Dims()
	if r.Len() != rows || c.Len() != cols {
		panic(mat.ErrShape)
	}
	dst.Apply(func(i, j int, v float64) float64 {
		return r.AtVec(i) * v * c.AtVec(j)
	}, m)
}

// AnyOutside reports whether any element of v is less than lo or greater
// than hi. A NaN element is neither, so it never counts as outside.
func AnyOutside(v *mat.VecDense, lo, hi float64) bool {
	for i := 0; i < v.Len(); i++ {
		if x := v.AtVec(i); x < lo || x > hi {
			return true
		}
	}
	return false
}
