// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// VecFull returns a vector of the given length with every element set
// to value
func VecFull(length int, value float64) *mat.VecDense {
	data := make([]float64, length)
	for i := range data {
		data[i] = value
	}
	return mat.NewVecDense(length, data)
}
