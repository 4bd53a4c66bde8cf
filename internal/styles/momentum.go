package styles

import (
	"fmt"
	"sort"
	"time"

	"factormodel/internal/panelutil"
)

// ReturnObservation is one daily asset return.
type ReturnObservation struct {
	Date   time.Time
	Symbol string
	Return float64
}

type MomentumConfig struct {
	// look-back window in trading days
	TrailingDays int
	// half-life of the exponential weighting, in trading days
	HalfLife int
	// days skipped immediately before the observation date, avoiding the
	// short-term reversal effect
	Lag int
	// winsorization percentile applied to raw scores per date; nil disables
	WinsorFactor *float64
}

func DefaultMomentumConfig() MomentumConfig {
	pct := 0.01
	return MomentumConfig{
		TrailingDays: 504, // ~2 years
		HalfLife:     126, // ~6 months
		Lag:          20,  // ~1 month
		WinsorFactor: &pct,
	}
}

// MomentumScores computes exponentially-weighted trailing returns per
// symbol, lagged by the configured number of days, then standardizes the
// raw scores cross-sectionally within each date. Dates without at least
// half the trailing window of history produce no score.
func MomentumScores(observations []ReturnObservation, cfg MomentumConfig) ([]Score, error) {
	if cfg.TrailingDays <= 0 || cfg.HalfLife <= 0 {
		return nil, fmt.Errorf("momentum config requires positive window and half-life, got %d and %d", cfg.TrailingDays, cfg.HalfLife)
	}
	if cfg.Lag < 0 {
		return nil, fmt.Errorf("momentum lag cannot be negative, got %d", cfg.Lag)
	}

	bySymbol := map[string][]ReturnObservation{}
	for _, obs := range observations {
		bySymbol[obs.Symbol] = append(bySymbol[obs.Symbol], obs)
	}

	// most recent first, matching the trailing window orientation
	weights := panelutil.ExpWeights(cfg.TrailingDays, cfg.HalfLife)
	minPeriods := cfg.TrailingDays / 2

	raw := []Score{}
	for symbol, series := range bySymbol {
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].Date.Before(series[j].Date)
		})

		for i := range series {
			end := i - cfg.Lag // inclusive window end
			if end+1 < minPeriods {
				continue
			}
			start := end - cfg.TrailingDays + 1
			if start < 0 {
				start = 0
			}

			var score float64
			for j := end; j >= start; j-- {
				score += weights[end-j] * series[j].Return
			}
			raw = append(raw, Score{
				Date:   series[i].Date,
				Symbol: symbol,
				Score:  score,
			})
		}
	}

	return standardizeByDate(raw, cfg.WinsorFactor)
}
