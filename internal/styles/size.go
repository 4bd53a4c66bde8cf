package styles

import (
	"math"
	"time"
)

// MarketCapObservation is one daily market capitalization.
type MarketCapObservation struct {
	Date      time.Time
	Symbol    string
	MarketCap float64
}

// SizeScores computes the size style score as the negated cross-sectional
// z-score of log market cap, so small caps score positive (small minus
// big). Non-positive caps are floored before the log.
func SizeScores(observations []MarketCapObservation) ([]Score, error) {
	raw := make([]Score, len(observations))
	for i, obs := range observations {
		raw[i] = Score{
			Date:   obs.Date,
			Symbol: obs.Symbol,
			Score:  math.Log(math.Max(obs.MarketCap, 1e-12)),
		}
	}

	standardized, err := standardizeByDate(raw, nil)
	if err != nil {
		return nil, err
	}
	for i := range standardized {
		standardized[i].Score = -standardized[i].Score
	}
	return standardized, nil
}
