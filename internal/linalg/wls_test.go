package linalg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightedLeastSquares(t *testing.T) {
	t.Run("recovers exact linear fit", func(t *testing.T) {
		y := []float64{1, 2, 3, 4, 5}
		x := [][]float64{
			{1, 1},
			{1, 2},
			{1, 3},
			{1, 4},
			{1, 5},
		}
		weights := []float64{1, 1, 1, 1, 1}

		result, err := WeightedLeastSquares(y, x, weights)
		require.NoError(t, err)

		// perfect fit: y = 0 + 1*x
		require.InDelta(t, 0.0, result.Coefficients[0], 1e-10)
		require.InDelta(t, 1.0, result.Coefficients[1], 1e-10)
		require.InDelta(t, 1.0, result.RSquared, 1e-10)
		for _, r := range result.Residuals {
			require.InDelta(t, 0.0, r, 1e-10)
		}
	})

	t.Run("near zero weight suppresses outlier", func(t *testing.T) {
		y := []float64{1, 2, 3, 4, 100}
		x := [][]float64{
			{1, 1},
			{1, 2},
			{1, 3},
			{1, 4},
			{1, 5},
		}
		weights := []float64{1, 1, 1, 1, 0.001}

		result, err := WeightedLeastSquares(y, x, weights)
		require.NoError(t, err)

		// slope should track the four clean points
		require.InDelta(t, 1.0, result.Coefficients[1], 0.1)
	})

	t.Run("residuals are unweighted", func(t *testing.T) {
		y := []float64{1, 2, 3, 4, 100}
		x := [][]float64{
			{1, 1},
			{1, 2},
			{1, 3},
			{1, 4},
			{1, 5},
		}
		weights := []float64{1, 1, 1, 1, 0.001}

		result, err := WeightedLeastSquares(y, x, weights)
		require.NoError(t, err)

		// the outlier keeps its large raw residual even though it was
		// nearly ignored by the fit
		require.Greater(t, result.Residuals[4], 90.0)
	})

	t.Run("constant response has zero r squared", func(t *testing.T) {
		y := []float64{2, 2, 2}
		x := [][]float64{{1}, {1}, {1}}
		weights := []float64{1, 1, 1}

		result, err := WeightedLeastSquares(y, x, weights)
		require.NoError(t, err)
		require.Equal(t, 0.0, result.RSquared)
	})

	t.Run("collinear design is singular", func(t *testing.T) {
		y := []float64{1, 2, 3}
		x := [][]float64{
			{1, 2},
			{2, 4},
			{3, 6},
		}
		weights := []float64{1, 1, 1}

		_, err := WeightedLeastSquares(y, x, weights)
		require.ErrorIs(t, err, ErrSingularMatrix)
	})

	t.Run("weight length mismatch", func(t *testing.T) {
		y := []float64{1, 2, 3}
		x := [][]float64{{1}, {1}, {1}}
		weights := []float64{1, 1}

		_, err := WeightedLeastSquares(y, x, weights)

		var dimErr DimensionMismatchError
		require.ErrorAs(t, err, &dimErr)
		require.Equal(t, "weights", dimErr.Context)
	})

	t.Run("empty inputs", func(t *testing.T) {
		_, err := WeightedLeastSquares(nil, nil, nil)
		require.ErrorIs(t, err, ErrEmptyData)
	})
}
