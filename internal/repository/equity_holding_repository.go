package repository

import (
	"database/sql"
	"fmt"
	"pmsdesk/internal/db/models/postgres/public/model"
	"pmsdesk/internal/db/models/postgres/public/table"
	db "pmsdesk/internal/db/query"
	"pmsdesk/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type EquityHoldingRepository interface {
	List(tx *sql.Tx, stage domain.Stage, qcode string) ([]model.EquityHolding, error)
	// Add inserts rows with one statement behind a savepoint.
	Add(tx *sql.Tx, stage domain.Stage, rows []model.EquityHolding) error
	DeleteByQcode(tx *sql.Tx, stage domain.Stage, qcode string) (int64, error)
	DeleteBetween(tx *sql.Tx, stage domain.Stage, qcode string, dates domain.DateRange) (int64, error)
}

type equityHoldingRepositoryHandler struct{}

func NewEquityHoldingRepository() EquityHoldingRepository {
	return equityHoldingRepositoryHandler{}
}

func equityHoldingTable(stage domain.Stage) *table.EquityHoldingTable {
	if stage == domain.StageProduction {
		return table.EquityHolding
	}
	return table.EquityHoldingTest
}

func (h equityHoldingRepositoryHandler) List(tx *sql.Tx, stage domain.Stage, qcode string) ([]model.EquityHolding, error) {
	t := equityHoldingTable(stage)
	query := t.SELECT(t.AllColumns).
		WHERE(t.Qcode.EQ(postgres.String(qcode))).
		ORDER_BY(t.Date.ASC(), t.Symbol.ASC(), t.ID.ASC())

	out := []model.EquityHolding{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s rows for %s: %w", t.TableName(), qcode, err)
	}

	return out, nil
}

func (h equityHoldingRepositoryHandler) Add(tx *sql.Tx, stage domain.Stage, rows []model.EquityHolding) error {
	if len(rows) == 0 {
		return nil
	}
	t := equityHoldingTable(stage)
	query := t.INSERT(t.MutableColumns).MODELS(rows)

	err := db.WithSavepoint(tx, func() error {
		_, err := query.Exec(tx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to insert %d rows into %s: %w", len(rows), t.TableName(), err)
	}

	return nil
}

func (h equityHoldingRepositoryHandler) DeleteByQcode(tx *sql.Tx, stage domain.Stage, qcode string) (int64, error) {
	t := equityHoldingTable(stage)
	query := t.DELETE().WHERE(t.Qcode.EQ(postgres.String(qcode)))

	return execDelete(tx, query, t.TableName(), qcode)
}

func (h equityHoldingRepositoryHandler) DeleteBetween(tx *sql.Tx, stage domain.Stage, qcode string, dates domain.DateRange) (int64, error) {
	t := equityHoldingTable(stage)
	query := t.DELETE().WHERE(
		t.Qcode.EQ(postgres.String(qcode)).
			AND(t.Date.GT_EQ(postgres.DateT(dates.Start))).
			AND(t.Date.LT_EQ(postgres.DateT(dates.End))),
	)

	return execDelete(tx, query, t.TableName(), qcode)
}
