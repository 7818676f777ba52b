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

type MasterSheetRepository interface {
	List(tx *sql.Tx, stage domain.Stage, qcode string) ([]model.MasterSheet, error)
	// Add inserts rows with one statement. A failure leaves tx usable.
	Add(tx *sql.Tx, stage domain.Stage, rows []model.MasterSheet) error
	DeleteByQcode(tx *sql.Tx, stage domain.Stage, qcode string) (int64, error)
	DeleteBetween(tx *sql.Tx, stage domain.Stage, qcode string, dates domain.DateRange) (int64, error)
}

type masterSheetRepositoryHandler struct{}

func NewMasterSheetRepository() MasterSheetRepository {
	return masterSheetRepositoryHandler{}
}

func masterSheetTable(stage domain.Stage) *table.MasterSheetTable {
	if stage == domain.StageProduction {
		return table.MasterSheet
	}
	return table.MasterSheetTest
}

func (h masterSheetRepositoryHandler) List(tx *sql.Tx, stage domain.Stage, qcode string) ([]model.MasterSheet, error) {
	t := masterSheetTable(stage)
	query := t.SELECT(t.AllColumns).
		WHERE(t.Qcode.EQ(postgres.String(qcode))).
		ORDER_BY(t.Date.ASC(), t.ID.ASC())

	out := []model.MasterSheet{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s rows for %s: %w", t.TableName(), qcode, err)
	}

	return out, nil
}

func (h masterSheetRepositoryHandler) Add(tx *sql.Tx, stage domain.Stage, rows []model.MasterSheet) error {
	if len(rows) == 0 {
		return nil
	}
	t := masterSheetTable(stage)
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

func (h masterSheetRepositoryHandler) DeleteByQcode(tx *sql.Tx, stage domain.Stage, qcode string) (int64, error) {
	t := masterSheetTable(stage)
	query := t.DELETE().WHERE(t.Qcode.EQ(postgres.String(qcode)))

	return execDelete(tx, query, t.TableName(), qcode)
}

func (h masterSheetRepositoryHandler) DeleteBetween(tx *sql.Tx, stage domain.Stage, qcode string, dates domain.DateRange) (int64, error) {
	t := masterSheetTable(stage)
	query := t.DELETE().WHERE(
		t.Qcode.EQ(postgres.String(qcode)).
			AND(t.Date.GT_EQ(postgres.DateT(dates.Start))).
			AND(t.Date.LT_EQ(postgres.DateT(dates.End))),
	)

	return execDelete(tx, query, t.TableName(), qcode)
}
