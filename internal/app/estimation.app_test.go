package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"factormodel/internal/db/models/postgres/public/model"
	"factormodel/internal/domain"
	"factormodel/internal/estimator"
	mock_repository "factormodel/internal/repository/mocks"
	"factormodel/internal/util"
)

func testPanel() domain.Panel {
	cs := domain.CrossSection{
		Date:        util.NewDate(2024, 1, 2),
		Symbols:     []string{"AAPL", "MSFT", "JPM", "GS"},
		Returns:     []float64{0.01, 0.008, -0.004, -0.006},
		MarketCaps:  []float64{3e12, 2.8e12, 5e11, 1.2e11},
		SectorNames: []string{"sector_Technology", "sector_Financials"},
		Sectors: [][]float64{
			{1, 0},
			{1, 0},
			{0, 1},
			{0, 1},
		},
	}
	return domain.Panel{cs}
}

func TestEstimationHandler_Run(t *testing.T) {
	t.Run("persists factor and residual returns under one run id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		factorReturnRepository := mock_repository.NewMockFactorReturnRepository(ctrl)
		residualReturnRepository := mock_repository.NewMockResidualReturnRepository(ctrl)

		est, err := estimator.New(estimator.Config{}, nil)
		require.NoError(t, err)

		handler := EstimationHandler{
			Estimator:                est,
			FactorReturnRepository:   factorReturnRepository,
			ResidualReturnRepository: residualReturnRepository,
		}

		var persistedFactors []*model.FactorReturn
		factorReturnRepository.EXPECT().
			AddMany(gomock.Any()).
			DoAndReturn(func(in []*model.FactorReturn) error {
				persistedFactors = in
				return nil
			})

		var persistedResiduals []*model.ResidualReturn
		residualReturnRepository.EXPECT().
			AddMany(gomock.Any()).
			DoAndReturn(func(in []*model.ResidualReturn) error {
				persistedResiduals = in
				return nil
			})

		result, err := handler.Run(context.Background(), testPanel())
		require.NoError(t, err)

		// market + 2 sectors, one residual per asset
		require.Len(t, persistedFactors, 3)
		require.Len(t, persistedResiduals, 4)
		for _, m := range persistedFactors {
			require.Equal(t, result.RunID, m.RunID)
		}
		for _, m := range persistedResiduals {
			require.Equal(t, result.RunID, m.RunID)
		}
		require.Equal(t, "market", persistedFactors[0].Factor)
		require.Equal(t, string(domain.FactorKind_Market), persistedFactors[0].Kind)
	})

	t.Run("does not persist when estimation fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		factorReturnRepository := mock_repository.NewMockFactorReturnRepository(ctrl)
		residualReturnRepository := mock_repository.NewMockResidualReturnRepository(ctrl)

		est, err := estimator.New(estimator.Config{}, nil)
		require.NoError(t, err)

		handler := EstimationHandler{
			Estimator:                est,
			FactorReturnRepository:   factorReturnRepository,
			ResidualReturnRepository: residualReturnRepository,
		}

		panel := testPanel()
		panel[0].SectorNames = nil
		panel[0].Sectors = [][]float64{{}, {}, {}, {}}

		_, err = handler.Run(context.Background(), panel)
		require.Error(t, err)
	})
}
