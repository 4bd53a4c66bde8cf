package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"factormodel/internal/app"
	"factormodel/internal/data"
	"factormodel/internal/estimator"
	"factormodel/internal/logger"
	"factormodel/internal/repository"
)

func main() {
	if err := Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}

func Execute(ctx context.Context) error {
	root := &cobra.Command{Use: "factormodel", Short: "Cross-sectional factor return estimation"}
	root.AddCommand(estimateCmd())
	return root.ExecuteContext(ctx)
}

func estimateCmd() *cobra.Command {
	var (
		panelPath   string
		factorOut   string
		residualOut string
		winsorPct   float64
		noWinsor    bool
		databaseURL string
	)
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate factor and residual returns from a panel csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()
			ctx := context.WithValue(cmd.Context(), logger.ContextKey, log)

			f, err := os.Open(panelPath)
			if err != nil {
				return fmt.Errorf("failed to open panel csv: %w", err)
			}
			panel, err := data.LoadPanel(f)
			f.Close()
			if err != nil {
				return err
			}
			log.Infow("loaded panel", "dates", len(panel))

			cfg := estimator.DefaultConfig()
			if noWinsor {
				cfg.WinsorPercentile = nil
			} else {
				cfg.WinsorPercentile = &winsorPct
			}
			est, err := estimator.New(cfg, log)
			if err != nil {
				return err
			}

			if databaseURL != "" {
				dbConn, err := sql.Open("postgres", databaseURL)
				if err != nil {
					return fmt.Errorf("failed to connect to db: %w", err)
				}
				defer dbConn.Close()

				handler := app.EstimationHandler{
					Estimator:                est,
					FactorReturnRepository:   repository.NewFactorReturnRepository(dbConn),
					ResidualReturnRepository: repository.NewResidualReturnRepository(dbConn),
				}
				out, err := handler.Run(ctx, panel)
				if err != nil {
					return err
				}
				log.Infow("estimation run persisted", "runID", out.RunID.String())
				return nil
			}

			result, err := est.EstimatePanel(panel)
			if err != nil {
				return err
			}

			factorFile, err := os.Create(factorOut)
			if err != nil {
				return fmt.Errorf("failed to create factor returns csv: %w", err)
			}
			defer factorFile.Close()
			if err := data.WriteFactorReturns(factorFile, result.FactorReturns); err != nil {
				return err
			}

			residualFile, err := os.Create(residualOut)
			if err != nil {
				return fmt.Errorf("failed to create residual returns csv: %w", err)
			}
			defer residualFile.Close()
			if err := data.WriteResidualReturns(residualFile, result.Residuals); err != nil {
				return err
			}

			log.Infow(
				"estimation complete",
				"factorReturns", len(result.FactorReturns),
				"residualReturns", len(result.Residuals),
				"skippedDates", len(result.Skipped),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&panelPath, "panel", "", "path to the long-form panel csv")
	cmd.MarkFlagRequired("panel")
	cmd.Flags().StringVar(&factorOut, "factor-returns", "factor_returns.csv", "output path for factor returns")
	cmd.Flags().StringVar(&residualOut, "residual-returns", "residual_returns.csv", "output path for residual returns")
	cmd.Flags().Float64Var(&winsorPct, "winsor", 0.05, "winsorization percentile for asset returns")
	cmd.Flags().BoolVar(&noWinsor, "no-winsor", false, "disable return winsorization")
	cmd.Flags().StringVar(&databaseURL, "db", "", "postgres connection string; when set, results are persisted instead of written to csv")
	return cmd
}
