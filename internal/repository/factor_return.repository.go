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

type FactorReturnRepository interface {
	AddMany([]*model.FactorReturn) error
	List(runID uuid.UUID) ([]model.FactorReturn, error)
}

type factorReturnRepositoryHandler struct {
	Db *sql.DB
}

func NewFactorReturnRepository(db *sql.DB) FactorReturnRepository {
	return factorReturnRepositoryHandler{db}
}

func (h factorReturnRepositoryHandler) AddMany(in []*model.FactorReturn) error {
	if len(in) == 0 {
		return nil
	}

	for _, x := range in {
		x.CreatedAt = time.Now().UTC()
	}
	query := table.FactorReturn.INSERT(table.FactorReturn.MutableColumns).
		MODELS(in)
	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to create factor returns in db: %w", err)
	}

	return nil
}

func (h factorReturnRepositoryHandler) List(runID uuid.UUID) ([]model.FactorReturn, error) {
	query := table.FactorReturn.SELECT(table.FactorReturn.AllColumns).
		WHERE(table.FactorReturn.RunID.EQ(postgres.UUID(runID))).
		ORDER_BY(table.FactorReturn.Date.ASC(), table.FactorReturn.Factor.ASC())

	out := []model.FactorReturn{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list factor returns: %w", err)
	}

	return out, nil
}
