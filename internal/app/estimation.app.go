package app

import (
	"context"
	"factormodel/internal/db/models/postgres/public/model"
	"factormodel/internal/domain"
	"factormodel/internal/estimator"
	"factormodel/internal/logger"
	"factormodel/internal/repository"
	"fmt"

	"github.com/google/uuid"
)

// EstimationHandler runs the panel estimation and persists the resulting
// factor and residual returns under a fresh run id.
type EstimationHandler struct {
	Estimator                *estimator.CrossSectionalEstimator
	FactorReturnRepository   repository.FactorReturnRepository
	ResidualReturnRepository repository.ResidualReturnRepository
}

type EstimationRunResult struct {
	RunID  uuid.UUID
	Result *estimator.PanelResult
}

func (h EstimationHandler) Run(ctx context.Context, panel domain.Panel) (*EstimationRunResult, error) {
	log := logger.FromContext(ctx)

	result, err := h.Estimator.EstimatePanel(panel)
	if err != nil {
		return nil, err
	}

	runID := uuid.New()

	factorModels := make([]*model.FactorReturn, len(result.FactorReturns))
	for i, fr := range result.FactorReturns {
		factorModels[i] = &model.FactorReturn{
			RunID:  runID,
			Date:   fr.Date,
			Factor: fr.Factor,
			Kind:   string(fr.Kind),
			Value:  fr.Return,
		}
	}
	if err := h.FactorReturnRepository.AddMany(factorModels); err != nil {
		return nil, fmt.Errorf("failed to persist factor returns: %w", err)
	}

	residualModels := make([]*model.ResidualReturn, len(result.Residuals))
	for i, rr := range result.Residuals {
		residualModels[i] = &model.ResidualReturn{
			RunID:  runID,
			Date:   rr.Date,
			Symbol: rr.Symbol,
			Value:  rr.Residual,
		}
	}
	if err := h.ResidualReturnRepository.AddMany(residualModels); err != nil {
		return nil, fmt.Errorf("failed to persist residual returns: %w", err)
	}

	log.Infow(
		"persisted estimation run",
		"runID", runID.String(),
		"factorReturns", len(result.FactorReturns),
		"residualReturns", len(result.Residuals),
		"skippedDates", len(result.Skipped),
	)

	return &EstimationRunResult{
		RunID:  runID,
		Result: result,
	}, nil
}
