// Package xsection holds cross-sectional transforms applied to one date's
// values at a time: centering, standardization, range normalization, and
// percentile masking.
package xsection

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// Center demeans the values. With standardize set, the result is also
// divided by the sample standard deviation; a zero-variance input is
// returned centered but unscaled.
func Center(data []float64, standardize bool) []float64 {
	out := make([]float64, len(data))
	if len(data) == 0 {
		return out
	}

	mean, err := stats.Mean(data)
	if err != nil {
		copy(out, data)
		return out
	}
	for i, v := range data {
		out[i] = v - mean
	}

	if !standardize || len(data) < 2 {
		return out
	}
	stdev, err := stats.StandardDeviationSample(data)
	if err != nil || stdev == 0 {
		return out
	}
	for i := range out {
		out[i] /= stdev
	}

	return out
}

// Normalize rescales the values linearly into [lower, upper]. A constant
// input maps every value to the midpoint of the range.
func Normalize(data []float64, lower, upper float64) []float64 {
	out := make([]float64, len(data))
	if len(data) == 0 {
		return out
	}

	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, v := range data {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}

	valueRange := maxVal - minVal
	if valueRange == 0 {
		mid := (lower + upper) / 2
		for i := range out {
			out[i] = mid
		}
		return out
	}

	for i, v := range data {
		out[i] = (v-minVal)/valueRange*(upper-lower) + lower
	}
	return out
}

// PercentileMask keeps values outside the [lowerPct, upperPct] empirical
// quantiles and replaces the interior with fillValue. Useful for building
// long-short portfolios from the tails of a score distribution.
func PercentileMask(data []float64, lowerPct, upperPct, fillValue float64) ([]float64, error) {
	if lowerPct < 0 || upperPct > 1 || lowerPct >= upperPct {
		return nil, fmt.Errorf("invalid percentile range [%v, %v]", lowerPct, upperPct)
	}

	out := make([]float64, len(data))
	copy(out, data)
	if len(data) == 0 {
		return out, nil
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	lowerThreshold := quantile(sorted, lowerPct)
	upperThreshold := quantile(sorted, upperPct)

	for i, v := range out {
		if v < lowerThreshold || v > upperThreshold {
			continue
		}
		out[i] = fillValue
	}
	return out, nil
}

// linear interpolation between order statistics
func quantile(sorted []float64, pct float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := pct * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
