package winsorize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWinsorize(t *testing.T) {
	t.Run("clips extremes", func(t *testing.T) {
		data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}

		result, err := Winsorize(data, 0.1)
		require.NoError(t, err)

		// 100 is clipped down, 1 is at worst raised to the lower bound
		require.Less(t, result[9], 100.0)
		require.GreaterOrEqual(t, result[0], 1.0)
	})

	t.Run("preserves middle values", func(t *testing.T) {
		data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

		result, err := Winsorize(data, 0.1)
		require.NoError(t, err)

		require.InDelta(t, 5.0, result[4], 1e-10)
		require.InDelta(t, 6.0, result[5], 1e-10)
	})

	t.Run("every output lies within the bounds", func(t *testing.T) {
		data := []float64{-50, -3, -1, 0, 0.5, 1, 2, 2.5, 3, 90}

		result, err := Winsorize(data, 0.2)
		require.NoError(t, err)

		lo := result[0]
		hi := result[0]
		for _, v := range result {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		// re-applying with the same percentile is a no-op
		again, err := Winsorize(result, 0.2)
		require.NoError(t, err)
		require.Equal(t, result, again)
		require.GreaterOrEqual(t, lo, -3.0)
		require.LessOrEqual(t, hi, 3.0)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}

		_, err := Winsorize(data, 0.1)
		require.NoError(t, err)
		require.Equal(t, 100.0, data[9])
	})

	t.Run("nan and inf pass through untouched", func(t *testing.T) {
		data := []float64{1, math.NaN(), 3, 4, 5, math.Inf(1)}

		result, err := Winsorize(data, 0.1)
		require.NoError(t, err)

		require.True(t, math.IsNaN(result[1]))
		require.True(t, math.IsInf(result[5], 1))
	})

	t.Run("all non-finite input is unchanged", func(t *testing.T) {
		data := []float64{math.NaN(), math.Inf(-1)}

		result, err := Winsorize(data, 0.1)
		require.NoError(t, err)
		require.True(t, math.IsNaN(result[0]))
		require.True(t, math.IsInf(result[1], -1))
	})

	t.Run("empty input", func(t *testing.T) {
		result, err := Winsorize([]float64{}, 0.1)
		require.NoError(t, err)
		require.Empty(t, result)
	})

	t.Run("tiny input keeps lower below upper", func(t *testing.T) {
		data := []float64{5}

		result, err := Winsorize(data, 0.49)
		require.NoError(t, err)
		require.Equal(t, []float64{5}, result)
	})

	t.Run("invalid percentiles", func(t *testing.T) {
		for _, pct := range []float64{0, 0.5, 0.6, -0.1} {
			_, err := Winsorize([]float64{1, 2, 3}, pct)

			var pctErr InvalidPercentileError
			require.ErrorAs(t, err, &pctErr)
			require.Equal(t, pct, pctErr.Percentile)
		}
	})
}

func TestWinsorizer(t *testing.T) {
	t.Run("rejects invalid percentile at construction", func(t *testing.T) {
		_, err := New(0.5)
		require.Error(t, err)

		_, err = New(0)
		require.Error(t, err)
	})

	t.Run("apply matches free function", func(t *testing.T) {
		w, err := New(0.1)
		require.NoError(t, err)
		require.Equal(t, 0.1, w.Percentile())

		data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}
		got, err := w.Apply(data)
		require.NoError(t, err)

		want, err := Winsorize(data, 0.1)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})
}
