package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	t.Run("well conditioned 2x2", func(t *testing.T) {
		a := [][]float64{
			{2, 1},
			{1, 3},
		}
		b := []float64{3, 5}

		x, err := Solve(a, b)
		require.NoError(t, err)

		// check the residual norm rather than hardcoding the answer
		for i := range a {
			var got float64
			for j := range x {
				got += a[i][j] * x[j]
			}
			require.InDelta(t, b[i], got, 1e-12)
		}
	})

	t.Run("pivoting handles zero on the diagonal", func(t *testing.T) {
		a := [][]float64{
			{0, 1},
			{1, 0},
		}
		b := []float64{2, 3}

		x, err := Solve(a, b)
		require.NoError(t, err)
		require.InDelta(t, 3.0, x[0], 1e-12)
		require.InDelta(t, 2.0, x[1], 1e-12)
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		a := [][]float64{
			{4, 1},
			{2, 3},
		}
		b := []float64{1, 2}

		_, err := Solve(a, b)
		require.NoError(t, err)

		require.Equal(t, [][]float64{{4, 1}, {2, 3}}, a)
		require.Equal(t, []float64{1, 2}, b)
	})

	t.Run("singular matrix", func(t *testing.T) {
		a := [][]float64{
			{1, 2},
			{2, 4},
		}
		b := []float64{1, 2}

		_, err := Solve(a, b)
		require.ErrorIs(t, err, ErrSingularMatrix)
	})

	t.Run("near singular matrix", func(t *testing.T) {
		a := [][]float64{
			{1, 1},
			{1, 1 + 1e-16},
		}
		b := []float64{1, 1}

		_, err := Solve(a, b)
		require.ErrorIs(t, err, ErrSingularMatrix)
	})

	t.Run("empty system", func(t *testing.T) {
		_, err := Solve(nil, nil)
		require.ErrorIs(t, err, ErrEmptyData)
	})

	t.Run("rhs length mismatch", func(t *testing.T) {
		a := [][]float64{
			{1, 0},
			{0, 1},
		}
		b := []float64{1}

		_, err := Solve(a, b)

		var dimErr DimensionMismatchError
		require.ErrorAs(t, err, &dimErr)
		require.Equal(t, 2, dimErr.Expected)
		require.Equal(t, 1, dimErr.Actual)
	})

	t.Run("non square matrix", func(t *testing.T) {
		a := [][]float64{
			{1, 0, 0},
			{0, 1, 0},
		}
		b := []float64{1, 2}

		_, err := Solve(a, b)

		var dimErr DimensionMismatchError
		require.ErrorAs(t, err, &dimErr)
	})

	t.Run("larger system", func(t *testing.T) {
		a := [][]float64{
			{4, -2, 1, 0},
			{-2, 4, -2, 1},
			{1, -2, 4, -2},
			{0, 1, -2, 4},
		}
		b := []float64{1, 2, 3, 4}

		x, err := Solve(a, b)
		require.NoError(t, err)

		var norm float64
		for i := range a {
			var got float64
			for j := range x {
				got += a[i][j] * x[j]
			}
			norm += (got - b[i]) * (got - b[i])
		}
		require.Less(t, math.Sqrt(norm), 1e-10)
	})
}
