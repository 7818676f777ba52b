package repository

import (
	"pmsdesk/internal/db/models/postgres/public/model"
	db "pmsdesk/internal/db/query"
	"pmsdesk/internal/domain"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMasterSheetRepository(t *testing.T) {
	dbConn := db.NewTest(t)
	tx, err := dbConn.Begin()
	require.NoError(t, err)
	db.CleanupTest(t, tx)

	_, err = tx.Exec(`INSERT INTO accounts (qcode, account_name, broker, account_type) VALUES ('QTEST01', 'Test Client', 'zerodha', 'pms')`)
	require.NoError(t, err)

	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
	}
	pv := decimal.NewFromInt(1000)
	rows := []model.MasterSheet{}
	for d := 1; d <= 4; d++ {
		rows = append(rows, model.MasterSheet{
			Qcode:          "QTEST01",
			Date:           day(d),
			PortfolioValue: &pv,
			SystemTag:      "SYS",
			CreatedAt:      time.Now().UTC(),
		})
	}

	repo := NewMasterSheetRepository()
	require.NoError(t, repo.Add(tx, domain.StageStaging, rows))

	staged, err := repo.List(tx, domain.StageStaging, "QTEST01")
	require.NoError(t, err)
	require.Len(t, staged, 4)
	require.Equal(t, day(1), staged[0].Date.UTC())

	production, err := repo.List(tx, domain.StageProduction, "QTEST01")
	require.NoError(t, err)
	require.Empty(t, production)

	t.Run("failed insert leaves tx usable", func(t *testing.T) {
		err := repo.Add(tx, domain.StageStaging, []model.MasterSheet{{Qcode: "MISSING", Date: day(1), SystemTag: "SYS"}})
		require.Error(t, err)

		staged, err := repo.List(tx, domain.StageStaging, "QTEST01")
		require.NoError(t, err)
		require.Len(t, staged, 4)
	})

	deleted, err := repo.DeleteBetween(tx, domain.StageStaging, "QTEST01", domain.DateRange{Start: day(2), End: day(3)})
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	deleted, err = repo.DeleteByQcode(tx, domain.StageStaging, "QTEST01")
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)
}
