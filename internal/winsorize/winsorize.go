// Package winsorize clips outliers in a numeric slice to empirical
// quantile bounds. It is used as optional preprocessing on per-date
// returns ahead of the factor regression.
package winsorize

import (
	"fmt"
	"math"
	"sort"
)

type InvalidPercentileError struct {
	Percentile float64
}

func (e InvalidPercentileError) Error() string {
	return fmt.Sprintf("invalid percentile: %v (must be in (0, 0.5))", e.Percentile)
}

// Winsorize clips every finite value of data into the empirical
// [percentile, 1-percentile] bounds. Non-finite values are excluded from
// the bound computation and passed through untouched. The input is not
// mutated; an empty input yields an empty output.
//
// Applying the same percentile to already-winsorized data is a no-op.
func Winsorize(data []float64, percentile float64) ([]float64, error) {
	if percentile <= 0 || percentile >= 0.5 {
		return nil, InvalidPercentileError{Percentile: percentile}
	}

	out := make([]float64, len(data))
	copy(out, data)
	if len(data) == 0 {
		return out, nil
	}

	finite := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return out, nil
	}
	sort.Float64s(finite)

	n := len(finite)
	lowerIdx := int(math.Floor(float64(n) * percentile))
	upperIdx := int(math.Ceil(float64(n)*(1-percentile))) - 1
	// clamp so that lower <= upper always holds, even for tiny n
	if upperIdx < lowerIdx {
		upperIdx = lowerIdx
	}
	if upperIdx > n-1 {
		upperIdx = n - 1
	}

	lowerBound := finite[lowerIdx]
	upperBound := finite[upperIdx]

	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < lowerBound {
			out[i] = lowerBound
		} else if v > upperBound {
			out[i] = upperBound
		}
	}

	return out, nil
}

// Winsorizer is a reusable, validated winsorization transform.
type Winsorizer struct {
	percentile float64
}

func New(percentile float64) (*Winsorizer, error) {
	if percentile <= 0 || percentile >= 0.5 {
		return nil, InvalidPercentileError{Percentile: percentile}
	}
	return &Winsorizer{percentile: percentile}, nil
}

func (w *Winsorizer) Percentile() float64 {
	return w.percentile
}

func (w *Winsorizer) Apply(data []float64) ([]float64, error) {
	return Winsorize(data, w.percentile)
}
