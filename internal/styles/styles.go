// Package styles computes per-asset style factor scores (momentum, size,
// value) from raw return and fundamental series. Scores feed the style
// exposure matrix of the cross-sectional factor regression; each score is
// standardized within its date so the regression sees comparable units.
package styles

import (
	"sort"
	"time"

	"factormodel/internal/winsorize"
	"factormodel/internal/xsection"
)

// Score is one style score for one (date, symbol).
type Score struct {
	Date   time.Time
	Symbol string
	Score  float64
}

func sortScores(scores []Score) {
	sort.SliceStable(scores, func(i, j int) bool {
		if !scores[i].Date.Equal(scores[j].Date) {
			return scores[i].Date.Before(scores[j].Date)
		}
		return scores[i].Symbol < scores[j].Symbol
	})
}

// standardizeByDate winsorizes (when pct is non-nil) and z-scores the raw
// values one date at a time.
func standardizeByDate(raw []Score, pct *float64) ([]Score, error) {
	byDate := map[time.Time][]int{}
	for i, s := range raw {
		byDate[s.Date] = append(byDate[s.Date], i)
	}

	out := make([]Score, len(raw))
	copy(out, raw)
	for _, indexes := range byDate {
		values := make([]float64, len(indexes))
		for i, idx := range indexes {
			values[i] = raw[idx].Score
		}

		if pct != nil {
			clean, err := winsorize.Winsorize(values, *pct)
			if err != nil {
				return nil, err
			}
			values = clean
		}

		standardized := xsection.Center(values, true)
		for i, idx := range indexes {
			out[idx].Score = standardized[i]
		}
	}

	sortScores(out)
	return out, nil
}
