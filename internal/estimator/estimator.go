// Package estimator runs the constrained factor regression across a full
// time-series panel, one cross-section at a time. A failed date is dropped
// and the run continues; configuration problems fail the whole run.
package estimator

import (
	"errors"
	"fmt"
	"math"
	"time"

	"factormodel/internal/domain"
	"factormodel/internal/linalg"
	"factormodel/internal/winsorize"

	"go.uber.org/zap"
)

type InsufficientDataError struct {
	Required int
	Actual   int
}

func (e InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need at least %d observations, got %d", e.Required, e.Actual)
}

// Config carries the run-level settings. Both knobs are decided by the
// caller, not computed here.
type Config struct {
	// winsorization percentile for per-date returns; nil disables it
	WinsorPercentile *float64
	// marker that style exposures were orthogonalized against sectors
	// upstream; carried through untouched
	ResidualizeStyles bool
}

func DefaultConfig() Config {
	p := 0.05
	return Config{
		WinsorPercentile:  &p,
		ResidualizeStyles: true,
	}
}

type CrossSectionalEstimator struct {
	winsorizer        *winsorize.Winsorizer
	residualizeStyles bool
	log               *zap.SugaredLogger
}

// New validates the configuration up front. An invalid percentile is a
// request that is wrong for every date, so it fails here rather than
// becoming a per-date skip.
func New(cfg Config, log *zap.SugaredLogger) (*CrossSectionalEstimator, error) {
	var w *winsorize.Winsorizer
	if cfg.WinsorPercentile != nil {
		var err error
		w, err = winsorize.New(*cfg.WinsorPercentile)
		if err != nil {
			return nil, fmt.Errorf("failed to configure winsorization: %w", err)
		}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &CrossSectionalEstimator{
		winsorizer:        w,
		residualizeStyles: cfg.ResidualizeStyles,
		log:               log,
	}, nil
}

func (e *CrossSectionalEstimator) ResidualizeStyles() bool {
	return e.residualizeStyles
}

type CrossSectionResult struct {
	FactorReturns []domain.FactorReturn
	Residuals     []domain.ResidualReturn
}

// EstimateCrossSection fits one date. Output ordering is market, then
// sectors in input column order, then styles in input column order, with
// one residual per asset in input row order.
func (e *CrossSectionalEstimator) EstimateCrossSection(cs domain.CrossSection) (*CrossSectionResult, error) {
	n := cs.NumAssets()
	if n == 0 {
		return nil, linalg.ErrEmptyData
	}
	// zero sectors is a malformed request, not a data problem for this
	// date, so it must never fall into the per-date skip path. Checked
	// here because a nil sector matrix would otherwise read as a ragged
	// input further down.
	if cs.NumSectors() == 0 {
		return nil, linalg.InvalidConfigurationError{Message: "must have at least one sector"}
	}
	if err := cs.Validate(); err != nil {
		return nil, err
	}

	// free parameters: market + (k-1) free sectors + m styles
	freeParams := 1 + (cs.NumSectors() - 1) + cs.NumStyles()
	if n <= freeParams {
		return nil, InsufficientDataError{Required: freeParams + 1, Actual: n}
	}

	returns := cs.Returns
	if e.winsorizer != nil {
		clean, err := e.winsorizer.Apply(returns)
		if err != nil {
			return nil, fmt.Errorf("failed to winsorize returns: %w", err)
		}
		returns = clean
	}

	// negative raw weights are floored to zero before the square root
	sqrtWeights := make([]float64, n)
	for i, w := range cs.MarketCaps {
		sqrtWeights[i] = math.Sqrt(math.Max(w, 0))
	}

	fit, err := linalg.ConstrainedWLS(returns, sqrtWeights, cs.Sectors, cs.Styles)
	if err != nil {
		return nil, err
	}

	factorReturns := make([]domain.FactorReturn, 0, 1+cs.NumSectors()+cs.NumStyles())
	factorReturns = append(factorReturns, domain.FactorReturn{
		Date:   cs.Date,
		Factor: "market",
		Kind:   domain.FactorKind_Market,
		Return: fit.MarketReturn,
	})
	for j, name := range cs.SectorNames {
		factorReturns = append(factorReturns, domain.FactorReturn{
			Date:   cs.Date,
			Factor: name,
			Kind:   domain.FactorKind_Sector,
			Return: fit.SectorReturns[j],
		})
	}
	for j, name := range cs.StyleNames {
		factorReturns = append(factorReturns, domain.FactorReturn{
			Date:   cs.Date,
			Factor: name,
			Kind:   domain.FactorKind_Style,
			Return: fit.StyleReturns[j],
		})
	}

	residuals := make([]domain.ResidualReturn, n)
	for i, symbol := range cs.Symbols {
		residuals[i] = domain.ResidualReturn{
			Date:     cs.Date,
			Symbol:   symbol,
			Residual: fit.Residuals[i],
		}
	}

	return &CrossSectionResult{
		FactorReturns: factorReturns,
		Residuals:     residuals,
	}, nil
}

type SkippedDate struct {
	Date   time.Time
	Reason string
}

type PanelResult struct {
	FactorReturns []domain.FactorReturn
	Residuals     []domain.ResidualReturn
	Skipped       []SkippedDate
}

// dateOutcome is the per-date result value: either committed records or a
// skip reason. Failures never unwind through the panel loop.
type dateOutcome struct {
	date    time.Time
	records *CrossSectionResult
	skipErr error
}

// EstimatePanel fits every cross-section in order. A date that fails with
// a data-shaped error (singular design, too few observations, ragged rows)
// is skipped entirely: no partial records, and the run moves on. A zero
// sector configuration indicates the whole request is malformed and aborts
// the run.
func (e *CrossSectionalEstimator) EstimatePanel(panel domain.Panel) (*PanelResult, error) {
	outcomes := make([]dateOutcome, 0, len(panel))
	for _, cs := range panel {
		records, err := e.EstimateCrossSection(cs)
		if err != nil {
			var cfgErr linalg.InvalidConfigurationError
			if errors.As(err, &cfgErr) {
				return nil, fmt.Errorf("failed to estimate panel: %w", err)
			}
			outcomes = append(outcomes, dateOutcome{date: cs.Date, skipErr: err})
			continue
		}
		outcomes = append(outcomes, dateOutcome{date: cs.Date, records: records})
	}

	result := &PanelResult{}
	for _, outcome := range outcomes {
		if outcome.skipErr != nil {
			e.log.Warnw(
				"skipping cross-section",
				"date", outcome.date.Format(time.DateOnly),
				"error", outcome.skipErr.Error(),
			)
			result.Skipped = append(result.Skipped, SkippedDate{
				Date:   outcome.date,
				Reason: outcome.skipErr.Error(),
			})
			continue
		}
		result.FactorReturns = append(result.FactorReturns, outcome.records.FactorReturns...)
		result.Residuals = append(result.Residuals, outcome.records.Residuals...)
	}

	return result, nil
}
