// Package panelutil holds the generic tabular helpers the data-preparation
// side of the model needs: per-symbol forward filling, smoothing, top-N
// selection, and decay-weight generation.
package panelutil

import (
	"sort"
	"time"
)

// FeatureRow is one (date, symbol) value in a long-format feature series.
// A nil Value marks a missing observation.
type FeatureRow struct {
	Date   time.Time
	Symbol string
	Value  *float64
}

// ForwardFill sorts the rows by date and fills missing values from the
// most recent prior observation of the same symbol. Leading gaps stay
// nil. The input is returned sorted; a fresh slice is allocated.
func ForwardFill(rows []FeatureRow) []FeatureRow {
	out := make([]FeatureRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	lastBySymbol := map[string]*float64{}
	for i := range out {
		if out[i].Value != nil {
			v := *out[i].Value
			lastBySymbol[out[i].Symbol] = &v
			continue
		}
		if last, ok := lastBySymbol[out[i].Symbol]; ok {
			v := *last
			out[i].Value = &v
		}
	}

	return out
}

// Smooth replaces each value with the mean of the trailing window of the
// same symbol's values (including the current one), after sorting by
// date. Rows with missing values are passed through untouched and do not
// contribute to any window.
func Smooth(rows []FeatureRow, window int) []FeatureRow {
	out := make([]FeatureRow, len(rows))
	copy(out, rows)
	if window <= 1 {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	trailing := map[string][]float64{}
	for i := range out {
		if out[i].Value == nil {
			continue
		}
		symbol := out[i].Symbol
		trailing[symbol] = append(trailing[symbol], *out[i].Value)
		if len(trailing[symbol]) > window {
			trailing[symbol] = trailing[symbol][1:]
		}

		var sum float64
		for _, v := range trailing[symbol] {
			sum += v
		}
		mean := sum / float64(len(trailing[symbol]))
		out[i].Value = &mean
	}

	return out
}
