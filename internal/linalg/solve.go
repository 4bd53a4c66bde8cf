package linalg

import "math"

// pivots below this magnitude mean the system is effectively rank deficient
const pivotThreshold = 1e-14

// Solve solves the dense square system a*x = b using Gaussian elimination
// with partial pivoting. Inputs are not mutated; the elimination runs on an
// augmented copy.
//
// Returns ErrSingularMatrix when no pivot above the threshold exists.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	if n == 0 {
		return nil, ErrEmptyData
	}
	for i := range a {
		if len(a[i]) != n {
			return nil, DimensionMismatchError{Expected: n, Actual: len(a[i]), Context: "matrix row"}
		}
	}
	if len(b) != n {
		return nil, DimensionMismatchError{Expected: n, Actual: len(b), Context: "rhs vector"}
	}

	// augmented matrix [A | b]
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, n+1)
		copy(aug[i], a[i])
		aug[i][n] = b[i]
	}

	for col := 0; col < n; col++ {
		// partial pivoting: pick the largest remaining entry in this column
		maxRow := col
		maxVal := math.Abs(aug[col][col])
		for row := col + 1; row < n; row++ {
			if v := math.Abs(aug[row][col]); v > maxVal {
				maxVal = v
				maxRow = row
			}
		}

		if maxVal < pivotThreshold {
			return nil, ErrSingularMatrix
		}

		if maxRow != col {
			aug[col], aug[maxRow] = aug[maxRow], aug[col]
		}

		for row := col + 1; row < n; row++ {
			factor := aug[row][col] / aug[col][col]
			for j := col; j <= n; j++ {
				aug[row][j] -= factor * aug[col][j]
			}
		}
	}

	// back substitution
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i][n]
		for j := i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum / aug[i][i]
	}

	return x, nil
}
