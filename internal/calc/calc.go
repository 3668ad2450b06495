// Package calc holds the arithmetic helper exercised by the unit test stage
// of the pipeline.
package calc

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// AddNumbers returns a + b using Go's addition for T.
func AddNumbers[T Number](a, b T) T {
	return a + b
}
