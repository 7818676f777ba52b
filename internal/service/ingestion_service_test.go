package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	desk_errors "pmsdesk/internal"
	"pmsdesk/internal/category"
	"pmsdesk/internal/db/models/postgres/public/model"
	db "pmsdesk/internal/db/query"
	"pmsdesk/internal/domain"
	"pmsdesk/internal/repository"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC)

type ingestionMocks struct {
	accounts *repository.MockAccountRepository
	master   *repository.MockMasterSheetRepository
	equity   *repository.MockEquityHoldingRepository
	mf       *repository.MockMutualFundHoldingRepository
}

func newTestLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestIngestionService(t *testing.T, cfg IngestionConfig) (IngestionService, ingestionMocks) {
	ctrl := gomock.NewController(t)
	m := ingestionMocks{
		accounts: repository.NewMockAccountRepository(ctrl),
		master:   repository.NewMockMasterSheetRepository(ctrl),
		equity:   repository.NewMockEquityHoldingRepository(ctrl),
		mf:       repository.NewMockMutualFundHoldingRepository(ctrl),
	}
	svc := NewIngestionService(db.NoopTxRunner{}, m.accounts, m.master, m.equity, m.mf, cfg, newTestLogger()).(ingestionServiceHandler)
	svc.now = func() time.Time { return testNow }
	return svc, m
}

func expectAccount(m *repository.MockAccountRepository, qcode string) {
	m.EXPECT().
		Get(gomock.Any(), qcode).
		Return(&model.Accounts{Qcode: qcode, AccountName: "Test Client"}, nil)
}

func masterSheetCSV(rows ...string) string {
	header := strings.Join(category.MasterSheet.Config().RequiredColumns, ",")
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}

func masterSheetLine(date string, portfolioValue string) string {
	return fmt.Sprintf("%[1]s,%[2]q,0,100,100,0,0%%,%[2]q,%[2]q,%[2]q,0,0%%,SYS", date, portfolioValue)
}

func equityCSV(rows ...string) string {
	header := strings.Join(category.EquityHolding.Config().RequiredColumns, ",")
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}

func equityLine(symbol, quantity, avgPrice string) string {
	return fmt.Sprintf("%s,QAW,NSE,%q,%q,Zerodha,Equity,Large Cap,110,1000,1100,100,inf", symbol, quantity, avgPrice)
}

func TestStage_MasterSheet(t *testing.T) {
	ctx := context.Background()
	qcode := "QAC00001"

	t.Run("partial failure keeps good rows", func(t *testing.T) {
		svc, m := newTestIngestionService(t, IngestionConfig{BatchSize: 500, FailedRowReportLimit: 10})
		expectAccount(m.accounts, qcode)
		m.master.EXPECT().DeleteByQcode(gomock.Any(), domain.StageStaging, qcode).Return(int64(4), nil)

		var staged []model.MasterSheet
		m.master.EXPECT().
			Add(gomock.Any(), domain.StageStaging, gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, stage domain.Stage, rows []model.MasterSheet) error {
				staged = append(staged, rows...)
				return nil
			})

		file := masterSheetCSV(
			masterSheetLine("2024-03-01", "1,000"),
			masterSheetLine("01/03/2024", "1,010"),
			masterSheetLine("2024-03-03", "1,020"),
		)
		result, err := svc.Stage(ctx, StageInput{
			Category: category.MasterSheet,
			Qcode:    qcode,
			FileName: "nav.csv",
			File:     strings.NewReader(file),
		})
		require.NoError(t, err)
		require.Equal(t, 3, result.TotalRows)
		require.Equal(t, 2, result.InsertedRows)
		require.Equal(t, 1, result.FailedCount)
		require.Equal(t, int64(4), result.DeletedRows)
		require.Len(t, result.FailedRows, 1)
		require.Equal(t, 3, result.FailedRows[0].RowIndex)
		require.Equal(t, "01/03/2024", result.FailedRows[0].Row["Date"])
		require.NotNil(t, result.FirstError)

		require.Len(t, staged, 2)
		require.True(t, staged[0].PortfolioValue.Equal(decimal.NewFromInt(1000)))
		require.Equal(t, "SYS", staged[1].SystemTag)
		require.Equal(t, testNow, staged[0].CreatedAt)
	})

	t.Run("missing column fails before staging is touched", func(t *testing.T) {
		svc, m := newTestIngestionService(t, IngestionConfig{})
		expectAccount(m.accounts, qcode)

		required := category.MasterSheet.Config().RequiredColumns
		header := strings.Join(required[:len(required)-1], ",")
		_, err := svc.Stage(ctx, StageInput{
			Category: category.MasterSheet,
			Qcode:    qcode,
			FileName: "nav.csv",
			File:     strings.NewReader(header + "\n2024-03-01,1,1,1,1,1,1,1,1,1,1,1\n"),
		})

		var missing desk_errors.ErrMissingColumns
		require.True(t, errors.As(err, &missing))
		require.Equal(t, []string{"System Tag"}, missing.Missing)
		require.Equal(t, required[:len(required)-1], missing.ColumnNames)
	})

	t.Run("bulk insert falls back to single rows", func(t *testing.T) {
		svc, m := newTestIngestionService(t, IngestionConfig{BatchSize: 500, FailedRowReportLimit: 10})
		expectAccount(m.accounts, qcode)
		m.master.EXPECT().DeleteByQcode(gomock.Any(), domain.StageStaging, qcode).Return(int64(0), nil)

		gomock.InOrder(
			m.master.EXPECT().Add(gomock.Any(), domain.StageStaging, gomock.Len(2)).Return(errors.New("duplicate key")),
			m.master.EXPECT().Add(gomock.Any(), domain.StageStaging, gomock.Len(1)).Return(nil),
			m.master.EXPECT().Add(gomock.Any(), domain.StageStaging, gomock.Len(1)).Return(errors.New("duplicate key")),
		)

		result, err := svc.Stage(ctx, StageInput{
			Category: category.MasterSheet,
			Qcode:    qcode,
			FileName: "nav.CSV",
			File: strings.NewReader(masterSheetCSV(
				masterSheetLine("2024-03-01", "100"),
				masterSheetLine("2024-03-02", "100"),
			)),
		})
		require.NoError(t, err)
		require.Equal(t, 1, result.InsertedRows)
		require.Equal(t, 1, result.FailedCount)
		require.Equal(t, 3, result.FailedRows[0].RowIndex)
	})

	t.Run("batches by configured size", func(t *testing.T) {
		svc, m := newTestIngestionService(t, IngestionConfig{BatchSize: 2, FailedRowReportLimit: 10})
		expectAccount(m.accounts, qcode)
		m.master.EXPECT().DeleteByQcode(gomock.Any(), domain.StageStaging, qcode).Return(int64(0), nil)
		m.master.EXPECT().Add(gomock.Any(), domain.StageStaging, gomock.Len(2)).Return(nil)
		m.master.EXPECT().Add(gomock.Any(), domain.StageStaging, gomock.Len(1)).Return(nil)

		result, err := svc.Stage(ctx, StageInput{
			Category: category.MasterSheet,
			Qcode:    qcode,
			FileName: "nav.csv",
			File: strings.NewReader(masterSheetCSV(
				masterSheetLine("2024-03-01", "100"),
				masterSheetLine("2024-03-02", "100"),
				masterSheetLine("2024-03-03", "100"),
			)),
		})
		require.NoError(t, err)
		require.Equal(t, 3, result.InsertedRows)
	})

	t.Run("date range skips rows outside it", func(t *testing.T) {
		svc, m := newTestIngestionService(t, IngestionConfig{})
		expectAccount(m.accounts, qcode)
		m.master.EXPECT().DeleteByQcode(gomock.Any(), domain.StageStaging, qcode).Return(int64(0), nil)
		m.master.EXPECT().Add(gomock.Any(), domain.StageStaging, gomock.Len(1)).Return(nil)

		result, err := svc.Stage(ctx, StageInput{
			Category:  category.MasterSheet,
			Qcode:     qcode,
			FileName:  "nav.csv",
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
			File: strings.NewReader(masterSheetCSV(
				masterSheetLine("2024-01-15", "100"),
				masterSheetLine("2024-02-15", "100"),
			)),
		})
		require.NoError(t, err)
		require.Equal(t, 1, result.InsertedRows)
		require.Equal(t, 1, result.SkippedRows)
		require.Equal(t, 0, result.FailedCount)
	})

	t.Run("same upload twice stages the same rows", func(t *testing.T) {
		svc, m := newTestIngestionService(t, IngestionConfig{})
		file := masterSheetCSV(
			masterSheetLine("2024-03-01", "100"),
			masterSheetLine("2024-03-02", "105"),
		)

		runs := [][]model.MasterSheet{}
		for i := 0; i < 2; i++ {
			expectAccount(m.accounts, qcode)
			m.master.EXPECT().DeleteByQcode(gomock.Any(), domain.StageStaging, qcode).Return(int64(i*2), nil)
			m.master.EXPECT().
				Add(gomock.Any(), domain.StageStaging, gomock.Any()).
				DoAndReturn(func(tx *sql.Tx, stage domain.Stage, rows []model.MasterSheet) error {
					runs = append(runs, rows)
					return nil
				})

			result, err := svc.Stage(ctx, StageInput{
				Category: category.MasterSheet,
				Qcode:    qcode,
				FileName: "nav.csv",
				File:     strings.NewReader(file),
			})
			require.NoError(t, err)
			require.Equal(t, 2, result.InsertedRows)
		}

		require.Len(t, runs, 2)
		require.Equal(t, "", cmp.Diff(runs[0], runs[1], cmp.Comparer(func(x, y decimal.Decimal) bool {
			return x.Equal(y)
		})))
	})
}

func TestStage_Preconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non csv", func(t *testing.T) {
		svc, _ := newTestIngestionService(t, IngestionConfig{})
		_, err := svc.Stage(ctx, StageInput{
			Category: category.MasterSheet,
			Qcode:    "QAC00001",
			FileName: "nav.xlsx",
			File:     strings.NewReader(""),
		})
		var invalidFile desk_errors.ErrInvalidFile
		require.True(t, errors.As(err, &invalidFile))
	})

	t.Run("unknown account", func(t *testing.T) {
		svc, m := newTestIngestionService(t, IngestionConfig{})
		m.accounts.EXPECT().Get(gomock.Any(), "QAC99999").Return(nil, nil)

		_, err := svc.Stage(ctx, StageInput{
			Category: category.MasterSheet,
			Qcode:    "QAC99999",
			FileName: "nav.csv",
			File:     strings.NewReader(masterSheetCSV(masterSheetLine("2024-03-01", "1"))),
		})
		var invalidAccount desk_errors.ErrInvalidAccount
		require.True(t, errors.As(err, &invalidAccount))
	})

	t.Run("header only", func(t *testing.T) {
		svc, m := newTestIngestionService(t, IngestionConfig{})
		expectAccount(m.accounts, "QAC00001")

		_, err := svc.Stage(ctx, StageInput{
			Category: category.MasterSheet,
			Qcode:    "QAC00001",
			FileName: "nav.csv",
			File:     strings.NewReader(masterSheetCSV()),
		})
		require.ErrorIs(t, err, desk_errors.ErrEmptyFile{})
	})

	t.Run("holdings need a date", func(t *testing.T) {
		svc, _ := newTestIngestionService(t, IngestionConfig{})
		_, err := svc.Stage(ctx, StageInput{
			Category: category.EquityHolding,
			Qcode:    "QAC00001",
			FileName: "holdings.csv",
			File:     strings.NewReader(equityCSV(equityLine("INFY", "10", "1500"))),
		})
		var invalidInput desk_errors.ErrInvalidInput
		require.True(t, errors.As(err, &invalidInput))
	})

	t.Run("half a date range", func(t *testing.T) {
		svc, _ := newTestIngestionService(t, IngestionConfig{})
		_, err := svc.Stage(ctx, StageInput{
			Category:  category.MasterSheet,
			Qcode:     "QAC00001",
			FileName:  "nav.csv",
			StartDate: "2024-01-01",
			File:      strings.NewReader(""),
		})
		var invalidInput desk_errors.ErrInvalidInput
		require.True(t, errors.As(err, &invalidInput))
	})
}

func TestStage_EquityHolding(t *testing.T) {
	ctx := context.Background()
	qcode := "QAC00002"
	svc, m := newTestIngestionService(t, IngestionConfig{FailedRowReportLimit: 10})
	expectAccount(m.accounts, qcode)
	m.equity.EXPECT().DeleteByQcode(gomock.Any(), domain.StageStaging, qcode).Return(int64(0), nil)

	var staged []model.EquityHolding
	m.equity.EXPECT().
		Add(gomock.Any(), domain.StageStaging, gomock.Len(1)).
		DoAndReturn(func(tx *sql.Tx, stage domain.Stage, rows []model.EquityHolding) error {
			staged = append(staged, rows...)
			return nil
		}).
		Times(2)

	result, err := svc.Stage(ctx, StageInput{
		Category: category.EquityHolding,
		Qcode:    qcode,
		FileName: "holdings.csv",
		Date:     "2024-03-31",
		File: strings.NewReader(equityCSV(
			equityLine("INFY", "10", "1,500.25"),
			equityLine("TCS", "ten", "3200"),
			equityLine("", "5", "100"),
			equityLine("HDFCBANK", "2.5", "1600"),
		)),
	})
	require.NoError(t, err)
	require.Equal(t, 4, result.TotalRows)
	require.Equal(t, 2, result.InsertedRows)
	require.Equal(t, 2, result.FailedCount)
	require.Equal(t, []int{3, 4}, []int{result.FailedRows[0].RowIndex, result.FailedRows[1].RowIndex})
	require.Contains(t, result.FailedRows[1].Error, "symbol")

	require.Len(t, staged, 2)
	require.Equal(t, "INFY", staged[0].Symbol)
	require.True(t, staged[0].AvgPrice.Equal(decimal.RequireFromString("1500.25")))
	require.True(t, staged[0].PercentPnl.IsZero())
	require.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), staged[0].Date)
	require.True(t, staged[1].Quantity.Equal(decimal.RequireFromString("2.5")))
}

func TestStage_FailedRowsAreBounded(t *testing.T) {
	ctx := context.Background()
	qcode := "QAC00003"
	svc, m := newTestIngestionService(t, IngestionConfig{FailedRowReportLimit: 2})
	expectAccount(m.accounts, qcode)
	m.equity.EXPECT().DeleteByQcode(gomock.Any(), domain.StageStaging, qcode).Return(int64(0), nil)

	lines := []string{}
	for i := 0; i < 5; i++ {
		lines = append(lines, equityLine("X", "bad", "1"))
	}
	result, err := svc.Stage(ctx, StageInput{
		Category: category.EquityHolding,
		Qcode:    qcode,
		FileName: "holdings.csv",
		Date:     "2024-03-31",
		File:     strings.NewReader(equityCSV(lines...)),
	})
	require.NoError(t, err)
	require.Equal(t, 5, result.FailedCount)
	require.Len(t, result.FailedRows, 2)
	require.Equal(t, 0, result.InsertedRows)
}

func TestStage_FailedRowsDefaultLimit(t *testing.T) {
	ctx := context.Background()
	qcode := "QAC00004"
	svc, m := newTestIngestionService(t, IngestionConfig{})
	expectAccount(m.accounts, qcode)
	m.equity.EXPECT().DeleteByQcode(gomock.Any(), domain.StageStaging, qcode).Return(int64(0), nil)

	lines := []string{}
	for i := 0; i < 12; i++ {
		lines = append(lines, equityLine("X", "bad", "1"))
	}
	result, err := svc.Stage(ctx, StageInput{
		Category: category.EquityHolding,
		Qcode:    qcode,
		FileName: "holdings.csv",
		Date:     "2024-03-31",
		File:     strings.NewReader(equityCSV(lines...)),
	})
	require.NoError(t, err)
	require.Equal(t, 12, result.FailedCount)
	require.Len(t, result.FailedRows, defaultFailedRowReportLimit)
}

const mutualFundHeader = "Symbol,ISIN,Scheme Code,Quantity,Avg Price,Broker,Debt/Equity,Mastersheet Tag,Sub Category,NAV,Buy Value,Value as of Today,PNL Amount,% PNL,As of Date"

func mutualFundLine(symbol, isin, schemeCode, asOf string) string {
	return fmt.Sprintf("%s,%s,%s,10,100,Zerodha,Equity,MF,Flexi Cap,110,1000,1100,100,10%%,%s", symbol, isin, schemeCode, asOf)
}

func TestStage_MutualFundHolding(t *testing.T) {
	ctx := context.Background()
	qcode := "QAC00005"
	svc, m := newTestIngestionService(t, IngestionConfig{FailedRowReportLimit: 10})
	expectAccount(m.accounts, qcode)
	m.mf.EXPECT().DeleteByQcode(gomock.Any(), domain.StageStaging, qcode).Return(int64(0), nil)

	var staged []model.MutualFundHoldingSheet
	m.mf.EXPECT().
		Add(gomock.Any(), domain.StageStaging, gomock.Len(1)).
		DoAndReturn(func(tx *sql.Tx, stage domain.Stage, rows []model.MutualFundHoldingSheet) error {
			staged = append(staged, rows...)
			return nil
		}).
		Times(2)

	file := strings.Join([]string{
		mutualFundHeader,
		mutualFundLine("FUNDA", "INF000A01", "", "31/03/2024"),
		mutualFundLine("FUNDB", "INF000B01", "120503", "03/04/2024"),
		mutualFundLine("FUNDC", "", "120504", "2024-03-31"),
	}, "\n") + "\n"

	result, err := svc.Stage(ctx, StageInput{
		Category: category.MutualFundHolding,
		Qcode:    qcode,
		FileName: "mf.csv",
		Date:     "2024-03-31",
		File:     strings.NewReader(file),
	})
	require.NoError(t, err)
	require.Equal(t, 3, result.TotalRows)
	require.Equal(t, 2, result.InsertedRows)
	require.Equal(t, 1, result.FailedCount)
	require.Equal(t, 4, result.FailedRows[0].RowIndex)
	require.Contains(t, result.FailedRows[0].Error, "isin")

	holdingDate := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	require.Len(t, staged, 2)
	require.Equal(t, holdingDate, staged[0].AsOfDate)
	require.Equal(t, holdingDate, staged[1].AsOfDate)
	require.Nil(t, staged[0].SchemeCode)
	require.Equal(t, "120503", *staged[1].SchemeCode)
	require.True(t, staged[1].PercentPnl.Equal(decimal.NewFromInt(10)))
}
