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

type MutualFundHoldingRepository interface {
	List(tx *sql.Tx, stage domain.Stage, qcode string) ([]model.MutualFundHoldingSheet, error)
	// Add inserts rows with one statement behind a savepoint.
	Add(tx *sql.Tx, stage domain.Stage, rows []model.MutualFundHoldingSheet) error
	DeleteByQcode(tx *sql.Tx, stage domain.Stage, qcode string) (int64, error)
	DeleteBetween(tx *sql.Tx, stage domain.Stage, qcode string, dates domain.DateRange) (int64, error)
}

type mutualFundHoldingRepositoryHandler struct{}

func NewMutualFundHoldingRepository() MutualFundHoldingRepository {
	return mutualFundHoldingRepositoryHandler{}
}

func mutualFundHoldingTable(stage domain.Stage) *table.MutualFundHoldingSheetTable {
	if stage == domain.StageProduction {
		return table.MutualFundHoldingSheet
	}
	return table.MutualFundHoldingSheetTest
}

func (h mutualFundHoldingRepositoryHandler) List(tx *sql.Tx, stage domain.Stage, qcode string) ([]model.MutualFundHoldingSheet, error) {
	t := mutualFundHoldingTable(stage)
	query := t.SELECT(t.AllColumns).
		WHERE(t.Qcode.EQ(postgres.String(qcode))).
		ORDER_BY(t.AsOfDate.ASC(), t.Isin.ASC(), t.ID.ASC())

	out := []model.MutualFundHoldingSheet{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s rows for %s: %w", t.TableName(), qcode, err)
	}

	return out, nil
}

func (h mutualFundHoldingRepositoryHandler) Add(tx *sql.Tx, stage domain.Stage, rows []model.MutualFundHoldingSheet) error {
	if len(rows) == 0 {
		return nil
	}
	t := mutualFundHoldingTable(stage)
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

func (h mutualFundHoldingRepositoryHandler) DeleteByQcode(tx *sql.Tx, stage domain.Stage, qcode string) (int64, error) {
	t := mutualFundHoldingTable(stage)
	query := t.DELETE().WHERE(t.Qcode.EQ(postgres.String(qcode)))

	return execDelete(tx, query, t.TableName(), qcode)
}

func (h mutualFundHoldingRepositoryHandler) DeleteBetween(tx *sql.Tx, stage domain.Stage, qcode string, dates domain.DateRange) (int64, error) {
	t := mutualFundHoldingTable(stage)
	query := t.DELETE().WHERE(
		t.Qcode.EQ(postgres.String(qcode)).
			AND(t.AsOfDate.GT_EQ(postgres.DateT(dates.Start))).
			AND(t.AsOfDate.LT_EQ(postgres.DateT(dates.End))),
	)

	return execDelete(tx, query, t.TableName(), qcode)
}
