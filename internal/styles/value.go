package styles

import (
	"fmt"
	"time"
)

// FundamentalObservation carries the price ratios used by the value score.
// Each ratio is fundamental-per-dollar-of-price, so higher means cheaper.
type FundamentalObservation struct {
	Date          time.Time
	Symbol        string
	BookPrice     float64
	SalesPrice    float64
	CashFlowPrice float64
}

type ValueConfig struct {
	// winsorization percentile applied to each ratio per date before
	// z-scoring; nil disables
	WinsorFactor *float64
}

func DefaultValueConfig() ValueConfig {
	pct := 0.01
	return ValueConfig{WinsorFactor: &pct}
}

// ValueScores standardizes each price ratio cross-sectionally within its
// date and averages the three z-scores into a composite value score.
func ValueScores(observations []FundamentalObservation, cfg ValueConfig) ([]Score, error) {
	ratios := []func(FundamentalObservation) float64{
		func(o FundamentalObservation) float64 { return o.BookPrice },
		func(o FundamentalObservation) float64 { return o.SalesPrice },
		func(o FundamentalObservation) float64 { return o.CashFlowPrice },
	}

	var composite []Score
	for _, ratio := range ratios {
		raw := make([]Score, len(observations))
		for i, obs := range observations {
			raw[i] = Score{
				Date:   obs.Date,
				Symbol: obs.Symbol,
				Score:  ratio(obs),
			}
		}
		standardized, err := standardizeByDate(raw, cfg.WinsorFactor)
		if err != nil {
			return nil, fmt.Errorf("failed to standardize value ratio: %w", err)
		}

		// standardizeByDate sorts by (date, symbol), so every ratio comes
		// back index-aligned with the previous ones
		if composite == nil {
			composite = make([]Score, len(standardized))
			copy(composite, standardized)
			for i := range composite {
				composite[i].Score = 0
			}
		}
		for i := range standardized {
			composite[i].Score += standardized[i].Score / float64(len(ratios))
		}
	}

	return composite, nil
}
