package sinkhorn_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"k3l.io/go-sinkhorn/pkg/matutil"
	"k3l.io/go-sinkhorn/pkg/sinkhorn"
)

func ExampleScaler_Fit() {
	sk := matutil.Must(sinkhorn.New())
	p := matutil.Must(matutil.FromRows([][]float64{
		{0.011, 0.15},
		{1.71, 0.1},
	}))
	result := matutil.Must(sk.Fit(p))
	fmt.Println("stop:", result.Stop)
	n, _ := result.Balanced.Dims()
	fmt.Print("row sums:")
	for i := 0; i < n; i++ {
		fmt.Printf(" %.2f", mat.Sum(result.Balanced.RowView(i)))
	}
	fmt.Println()
	fmt.Print("col sums:")
	for j := 0; j < n; j++ {
		fmt.Printf(" %.2f", mat.Sum(result.Balanced.ColView(j)))
	}
	fmt.Println()
	// Output:
	// stop: epsilon
	// row sums: 1.00 1.00
	// col sums: 1.00 1.00
}

func ExampleScaler_HasSupport() {
	sk := matutil.Must(sinkhorn.New())
	fmt.Println(sk.HasSupport(matutil.Must(matutil.FromRows([][]float64{
		{1, 0},
		{0, 1},
	}))))
	fmt.Println(sk.HasSupport(matutil.Must(matutil.FromRows([][]float64{
		{1, 0},
		{1, 0},
	}))))
	// Output:
	// true
	// false
}
