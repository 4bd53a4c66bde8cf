package linalg

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

type WLSResult struct {
	Coefficients []float64
	// unweighted residuals, y - X*beta
	Residuals []float64
	RSquared  float64
}

// WeightedLeastSquares fits beta minimizing sum_i w_i * (y_i - x_i*beta)^2.
//
// The weighted problem is converted to an ordinary one by scaling each row
// of x and entry of y by its weight, then solving the normal equations
// (Xw)'(Xw) beta = (Xw)'(yw) through Solve. A collinear design surfaces as
// ErrSingularMatrix from the solver.
func WeightedLeastSquares(y []float64, x [][]float64, weights []float64) (*WLSResult, error) {
	n := len(y)
	if n == 0 {
		return nil, ErrEmptyData
	}
	if len(x) != n {
		return nil, DimensionMismatchError{Expected: n, Actual: len(x), Context: "design matrix"}
	}
	if len(weights) != n {
		return nil, DimensionMismatchError{Expected: n, Actual: len(weights), Context: "weights"}
	}

	p := len(x[0])
	if p == 0 {
		return nil, ErrEmptyData
	}
	for i := range x {
		if len(x[i]) != p {
			return nil, DimensionMismatchError{Expected: p, Actual: len(x[i]), Context: "design matrix row"}
		}
	}

	// scale rows by the weights
	yWeighted := make([]float64, n)
	xWeighted := make([][]float64, n)
	for i := 0; i < n; i++ {
		yWeighted[i] = y[i] * weights[i]
		xWeighted[i] = make([]float64, p)
		for j := 0; j < p; j++ {
			xWeighted[i][j] = x[i][j] * weights[i]
		}
	}

	// normal equations: (Xw)'(Xw) beta = (Xw)'(yw)
	xtx := make([][]float64, p)
	xty := make([]float64, p)
	for j := 0; j < p; j++ {
		xtx[j] = make([]float64, p)
		for k := 0; k < p; k++ {
			var sum float64
			for i := 0; i < n; i++ {
				sum += xWeighted[i][j] * xWeighted[i][k]
			}
			xtx[j][k] = sum
		}
		var sum float64
		for i := 0; i < n; i++ {
			sum += xWeighted[i][j] * yWeighted[i]
		}
		xty[j] = sum
	}

	coefficients, err := Solve(xtx, xty)
	if err != nil {
		return nil, err
	}

	residuals := make([]float64, n)
	for i := 0; i < n; i++ {
		var fitted float64
		for j := 0; j < p; j++ {
			fitted += x[i][j] * coefficients[j]
		}
		residuals[i] = y[i] - fitted
	}

	yMean, err := stats.Mean(y)
	if err != nil {
		return nil, fmt.Errorf("failed to compute response mean: %w", err)
	}
	var ssTot, ssRes float64
	for i := 0; i < n; i++ {
		ssTot += (y[i] - yMean) * (y[i] - yMean)
		ssRes += residuals[i] * residuals[i]
	}
	rSquared := 0.0
	if ssTot > 0 {
		rSquared = 1 - ssRes/ssTot
	}

	return &WLSResult{
		Coefficients: coefficients,
		Residuals:    residuals,
		RSquared:     rSquared,
	}, nil
}
