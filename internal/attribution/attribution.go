// Package attribution decomposes a portfolio's return into factor
// contributions and a specific (residual) component, given estimated
// factor returns and the portfolio's exposures.
package attribution

import (
	"sort"

	"factormodel/internal/domain"
)

// FactorContribution is one factor's share of the portfolio return over
// the attribution window.
type FactorContribution struct {
	Factor           string
	Kind             domain.FactorKind
	Exposure         float64
	CumulativeReturn float64
	Contribution     float64
}

type AttributionResult struct {
	Contributions []FactorContribution
	// sum of all factor contributions
	ExplainedReturn float64
	// weighted residual return not captured by the factors
	SpecificReturn float64
	TotalReturn    float64
}

// ComputeAttribution sums each factor's return over the window and scales
// it by the portfolio's exposure to that factor. Factors with no entry in
// exposures contribute zero but still appear in the output; contributions
// are sorted by factor name for deterministic output. The specific
// return is the holdings-weighted sum of residuals; symbols absent from
// weights are ignored.
func ComputeAttribution(
	factorReturns []domain.FactorReturn,
	residualReturns []domain.ResidualReturn,
	exposures map[string]float64,
	weights map[string]float64,
) *AttributionResult {
	type factorAgg struct {
		kind      domain.FactorKind
		cumReturn float64
	}
	byFactor := map[string]*factorAgg{}
	for _, fr := range factorReturns {
		agg, ok := byFactor[fr.Factor]
		if !ok {
			agg = &factorAgg{kind: fr.Kind}
			byFactor[fr.Factor] = agg
		}
		agg.cumReturn += fr.Return
	}

	order := make([]string, 0, len(byFactor))
	for factor := range byFactor {
		order = append(order, factor)
	}
	sort.Strings(order)

	result := &AttributionResult{}
	for _, factor := range order {
		agg := byFactor[factor]
		exposure := exposures[factor]
		contribution := exposure * agg.cumReturn
		result.Contributions = append(result.Contributions, FactorContribution{
			Factor:           factor,
			Kind:             agg.kind,
			Exposure:         exposure,
			CumulativeReturn: agg.cumReturn,
			Contribution:     contribution,
		})
		result.ExplainedReturn += contribution
	}

	for _, rr := range residualReturns {
		weight, ok := weights[rr.Symbol]
		if !ok {
			continue
		}
		result.SpecificReturn += weight * rr.Residual
	}

	result.TotalReturn = result.ExplainedReturn + result.SpecificReturn
	return result
}
