package sinkhorn

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"k3l.io/go-sinkhorn/pkg/matutil"
)

func TestHasSupport(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]float64
		want        bool
		wantWarning string
	}{
		{
			"Identity",
			[][]float64{
				{1, 0},
				{0, 1},
			},
			true,
			"",
		},
		{
			"AllOnes",
			[][]float64{
				{1, 1},
				{1, 1},
			},
			true,
			"",
		},
		{
			"PositiveDense",
			[][]float64{
				{0.011, 0.15},
				{1.71, 0.1},
			},
			true,
			"",
		},
		{
			// rows 0 and 1 also collide on column 0, but the zero
			// column is detected first
			"ZeroColumn",
			[][]float64{
				{1, 0},
				{1, 0},
			},
			false,
			"some column is zero",
		},
		{
			"ZeroRow",
			[][]float64{
				{0, 0},
				{1, 1},
			},
			false,
			"some row is zero",
		},
		{
			"RowCollision",
			[][]float64{
				{1, 0, 0, 0},
				{1, 0, 0, 0},
				{0, 1, 1, 1},
				{0, 1, 1, 1},
			},
			false,
			"two rows are nonzero in only one shared column",
		},
		{
			"ColumnCollision",
			[][]float64{
				{1, 1, 0, 0},
				{0, 0, 1, 1},
				{0, 0, 1, 1},
				{0, 0, 1, 1},
			},
			false,
			"two columns are nonzero in only one shared row",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := matutil.Must(New(WithLogger(zerolog.New(&buf))))
			p := matutil.Must(matutil.FromRows(tt.rows))
			assert.Equal(t, tt.want, s.HasSupport(p))
			if tt.wantWarning == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.wantWarning)
			}
		})
	}
}

func TestHasZero(t *testing.T) {
	if hasZero(matutil.Ones(3)) {
		t.Error("hasZero() on all ones = true, want false")
	}
	if !hasZero(mat.NewVecDense(3, []float64{1, 0, 2})) {
		t.Error("hasZero() with a zero element = false, want true")
	}
}

func TestSingleNonzeroColumns(t *testing.T) {
	type args struct {
		rows [][]float64
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{
			"NoSingles",
			args{[][]float64{
				{1, 1},
				{1, 1},
			}},
			[]int{},
		},
		{
			"Diagonal",
			args{[][]float64{
				{1, 0},
				{0, 1},
			}},
			[]int{0, 1},
		},
		{
			"Repeated",
			args{[][]float64{
				{0, 2},
				{0, 3},
			}},
			[]int{1, 1},
		},
		{
			"MixedCounts",
			args{[][]float64{
				{5, 0, 0},
				{1, 2, 0},
				{0, 0, 4},
			}},
			[]int{0, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := matutil.Must(matutil.FromRows(tt.args.rows))
			if got := singleNonzeroColumns(p); !reflect.DeepEqual(got,
				tt.want) {
				t.Errorf("singleNonzeroColumns() = %v, want %v",
					got, tt.want)
			}
		})
	}
}

func TestHasDuplicate(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		want    bool
	}{
		{"Empty", nil, false},
		{"Single", []int{3}, false},
		{"Distinct", []int{4, 1, 3}, false},
		{"Duplicate", []int{4, 1, 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasDuplicate(tt.indices); got != tt.want {
				t.Errorf("hasDuplicate(%v) = %v, want %v",
					tt.indices, got, tt.want)
			}
		})
	}
}
