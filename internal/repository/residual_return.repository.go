package repository

import (
	"database/sql"
	"factormodel/internal/db/models/postgres/public/model"
	"factormodel/internal/db/models/postgres/public/table"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type ResidualReturnRepository interface {
	AddMany([]*model.ResidualReturn) error
	List(runID uuid.UUID) ([]model.ResidualReturn, error)
}

type residualReturnRepositoryHandler struct {
	Db *sql.DB
}

func NewResidualReturnRepository(db *sql.DB) ResidualReturnRepository {
	return residualReturnRepositoryHandler{db}
}

func (h residualReturnRepositoryHandler) AddMany(in []*model.ResidualReturn) error {
	if len(in) == 0 {
		return nil
	}

	for _, x := range in {
		x.CreatedAt = time.Now().UTC()
	}
	query := table.ResidualReturn.INSERT(table.ResidualReturn.MutableColumns).
		MODELS(in)
	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to create residual returns in db: %w", err)
	}

	return nil
}

func (h residualReturnRepositoryHandler) List(runID uuid.UUID) ([]model.ResidualReturn, error) {
	query := table.ResidualReturn.SELECT(table.ResidualReturn.AllColumns).
		WHERE(table.ResidualReturn.RunID.EQ(postgres.UUID(runID))).
		ORDER_BY(table.ResidualReturn.Date.ASC(), table.ResidualReturn.Symbol.ASC())

	out := []model.ResidualReturn{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list residual returns: %w", err)
	}

	return out, nil
}
