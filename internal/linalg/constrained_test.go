package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstrainedWLS(t *testing.T) {
	t.Run("sector returns sum to zero", func(t *testing.T) {
		y := []float64{0.01, 0.02, 0.015, 0.025, 0.03, 0.01}
		weights := []float64{1, 1, 1, 1, 1, 1}
		sectors := [][]float64{
			{1, 0},
			{1, 0},
			{1, 0},
			{0, 1},
			{0, 1},
			{0, 1},
		}
		styles := [][]float64{{0.5}, {0.3}, {0.2}, {-0.2}, {-0.3}, {-0.5}}

		result, err := ConstrainedWLS(y, weights, sectors, styles)
		require.NoError(t, err)

		var sectorSum float64
		for _, r := range result.SectorReturns {
			sectorSum += r
		}
		require.InDelta(t, 0.0, sectorSum, 1e-10)
	})

	t.Run("three sectors still sum to zero", func(t *testing.T) {
		y := []float64{0.02, -0.01, 0.005, 0.03, -0.015, 0.01, 0.025, -0.005}
		weights := []float64{120, 95, 300, 40, 210, 75, 160, 55}
		sectors := [][]float64{
			{1, 0, 0},
			{1, 0, 0},
			{0, 1, 0},
			{0, 1, 0},
			{0, 1, 0},
			{0, 0, 1},
			{0, 0, 1},
			{0, 0, 1},
		}
		styles := [][]float64{{0.4}, {-0.2}, {0.1}, {0.9}, {-0.6}, {0.3}, {-0.1}, {0.05}}

		result, err := ConstrainedWLS(y, weights, sectors, styles)
		require.NoError(t, err)

		var sectorSum float64
		for _, r := range result.SectorReturns {
			sectorSum += r
		}
		require.InDelta(t, 0.0, sectorSum, 1e-10)
		require.Len(t, result.SectorReturns, 3)
		require.Len(t, result.StyleReturns, 1)
		require.Len(t, result.Residuals, 8)
	})

	t.Run("single sector return is exactly zero", func(t *testing.T) {
		y := []float64{0.01, 0.02, 0.015, 0.025}
		weights := []float64{1, 1, 1, 1}
		sectors := [][]float64{{1}, {1}, {1}, {1}}
		styles := [][]float64{{0.5}, {0.1}, {-0.2}, {-0.4}}

		result, err := ConstrainedWLS(y, weights, sectors, styles)
		require.NoError(t, err)

		// the zero-sum constraint collapses trivially for k = 1
		require.Len(t, result.SectorReturns, 1)
		require.Equal(t, 0.0, result.SectorReturns[0])
	})

	t.Run("no style factors", func(t *testing.T) {
		y := []float64{0.01, 0.02, 0.015, 0.025, 0.012, 0.018}
		weights := []float64{1, 1, 1, 1, 1, 1}
		sectors := [][]float64{
			{1, 0},
			{0, 1},
			{1, 0},
			{0, 1},
			{1, 0},
			{0, 1},
		}

		result, err := ConstrainedWLS(y, weights, sectors, nil)
		require.NoError(t, err)
		require.Empty(t, result.StyleReturns)
		require.False(t, math.IsNaN(result.MarketReturn))
	})

	t.Run("zero sectors rejected", func(t *testing.T) {
		y := []float64{0.01, 0.02}
		weights := []float64{1, 1}
		sectors := [][]float64{{}, {}}

		_, err := ConstrainedWLS(y, weights, sectors, nil)

		var cfgErr InvalidConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("weight mismatch propagates", func(t *testing.T) {
		y := []float64{0.01, 0.02, 0.015}
		weights := []float64{1, 1}
		sectors := [][]float64{{1, 0}, {0, 1}, {1, 0}}

		_, err := ConstrainedWLS(y, weights, sectors, nil)

		var dimErr DimensionMismatchError
		require.ErrorAs(t, err, &dimErr)
		require.Equal(t, "weights", dimErr.Context)
	})

	t.Run("empty cross-section", func(t *testing.T) {
		_, err := ConstrainedWLS(nil, nil, nil, nil)
		require.ErrorIs(t, err, ErrEmptyData)
	})
}
