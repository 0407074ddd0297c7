package sinkhorn

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"k3l.io/go-sinkhorn/pkg/matutil"
)

// HasSupport reports whether p appears to have total support.
//
// A non-negative matrix has total support when it is nonzero and every
// positive entry lies on a positive diagonal, where a diagonal is the
// entry set a[1,sigma(1)], ..., a[N,sigma(N)] for some permutation
// sigma of {1, ..., N}. Total support guarantees that Fit converges.
//
// Deciding total support exactly is a matching problem. HasSupport only
// applies four necessary conditions, in order, stopping at the first
// failure:
//
//   - no column sums to zero
//   - no row sums to zero
//   - no two rows have their only nonzero entry in the same column
//   - no two columns have their only nonzero entry in the same row
//
// A failed condition is logged as a warning. A true return does not
// prove total support; matrices passing all four conditions can still
// drive Fit into Inf or NaN territory. p must be square.
func (s *Scaler) HasSupport(p mat.Matrix) bool {
	if hasZero(matutil.ColSums(p)) {
		s.logger.Warn().
			Msg("matrix does not have total support: some column is zero")
		return false
	}
	if hasZero(matutil.RowSums(p)) {
		s.logger.Warn().
			Msg("matrix does not have total support: some row is zero")
		return false
	}
	if hasDuplicate(singleNonzeroColumns(p)) {
		s.logger.Warn().
			Msg("matrix does not have total support: two rows are nonzero in only one shared column")
		return false
	}
	if hasDuplicate(singleNonzeroColumns(p.T())) {
		s.logger.Warn().
			Msg("matrix does not have total support: two columns are nonzero in only one shared row")
		return false
	}
	return true
}

func hasZero(v *mat.VecDense) bool {
	for i := 0; i < v.Len(); i++ {
		if v.AtVec(i) == 0 {
			return true
		}
	}
	return false
}

// singleNonzeroColumns returns, for every row of p holding exactly one
// nonzero entry, the column of that entry.
func singleNonzeroColumns(p mat.Matrix) []int {
	n, m := p.Dims()
	cols := make([]int, 0, n)
	for i := 0; i < n; i++ {
		count, col := 0, -1
		for j := 0; j < m; j++ {
			if p.At(i, j) != 0 {
				count++
				col = j
			}
		}
		if count == 1 {
			cols = append(cols, col)
		}
	}
	return cols
}

func hasDuplicate(indices []int) bool {
	sort.Ints(indices)
	for i := 1; i < len(indices); i++ {
		if indices[i] == indices[i-1] {
			return true
		}
	}
	return false
}
