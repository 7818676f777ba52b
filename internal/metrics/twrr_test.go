package metrics

import (
	"errors"
	desk_errors "pmsdesk/internal"
	"pmsdesk/internal/domain"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func day(d int) time.Time {
	return time.Date(2024, 4, d, 0, 0, 0, 0, time.UTC)
}

func aumRow(date string, value float64) domain.AumRecord {
	return domain.AumRecord{
		AccountCode: "ACC1",
		ClientName:  "Jane Doe",
		ClientID:    "qaw001",
		ValueDate:   date,
		Aum:         dec(value),
	}
}

func deposit(date string, qty float64) domain.TransactionRecord {
	return domain.TransactionRecord{
		AccountCode: "ACC1",
		Description: domain.CorpusDeposits,
		SettleDate:  date,
		Quantity:    dec(qty),
		ClientName:  "Jane Doe - Growth",
	}
}

func Test_ComputeTwrrNav(t *testing.T) {
	t.Run("single date", func(t *testing.T) {
		out, err := ComputeTwrrNav(nil, []domain.AumRecord{aumRow("01/04/2024", 100)}, "ACC1")
		require.NoError(t, err)

		require.True(t, out.Nav.Equal(dec(100)))
		require.True(t, out.CumulativeReturn.Equal(dec(1)))
		require.True(t, out.AnnualizedReturn.IsZero())
		require.Len(t, out.Consolidated, 1)
		require.Equal(t, "Jane Doe", out.ClientName)
		require.Equal(t, day(1), out.StartDate)
	})

	t.Run("simple growth", func(t *testing.T) {
		out, err := ComputeTwrrNav(nil, []domain.AumRecord{
			aumRow("02/04/2024", 110),
			aumRow("01/04/2024", 100),
		}, "ACC1")
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(dec(1.1), out.CumulativeReturn))
		require.Equal(t, "", cmp.Diff(dec(110), out.Nav))
		require.Equal(t, "", cmp.Diff(dec(110), out.TotalPnl))
		require.Equal(t, "", cmp.Diff(out.TotalPnl, out.UnrealizedPnl))
		require.True(t, out.RealizedPnl.IsZero())
		require.True(t, out.AnnualizedReturn.IsPositive())
	})

	t.Run("drawdown series", func(t *testing.T) {
		out, err := ComputeTwrrNav(nil, []domain.AumRecord{
			aumRow("01/04/2024", 100),
			aumRow("02/04/2024", 80),
			aumRow("03/04/2024", 90),
		}, "ACC1")
		require.NoError(t, err)

		base := domain.TwrrPeriod{AccountCode: "ACC1", SystemTag: "QAW"}
		expected := []domain.TwrrPeriod{
			withValues(base, day(1), 100, 100, 0, 100, 100, 0, 0, 0, 0, 1, 1),
			withValues(base, day(2), 80, 100, 0, 80, 100, -20, -20, 100, 20, 0.8, 0.8),
			withValues(base, day(3), 90, 80, 0, 90, 80, 10, 12.5, -20, 10, 1.125, 0.9),
		}
		require.Equal(t, "", cmp.Diff(expected, out.Consolidated))
		require.True(t, out.AnnualizedReturn.IsNegative())
	})

	t.Run("cash inflows", func(t *testing.T) {
		out, err := ComputeTwrrNav(
			[]domain.TransactionRecord{deposit("03/04/2024", 100)},
			[]domain.AumRecord{
				aumRow("01/04/2024", 100),
				aumRow("02/04/2024", 110),
				aumRow("03/04/2024", 210),
			},
			"ACC1",
		)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(dec(1.1), out.CumulativeReturn))
		require.Equal(t, "", cmp.Diff(dec(100), out.Consolidated[2].CashFlow))
		require.Equal(t, "", cmp.Diff(dec(1), out.Consolidated[2].PeriodReturn))
		require.Equal(t, "", cmp.Diff(dec(0), out.Consolidated[2].Pnl))
		require.Equal(t, day(3), out.StartDate)
		require.Equal(t, "", cmp.Diff(dec(110), out.TotalPnl))
	})

	t.Run("zero denominator keeps nav flat", func(t *testing.T) {
		out, err := ComputeTwrrNav(nil, []domain.AumRecord{
			aumRow("01/04/2024", 0),
			aumRow("02/04/2024", 50),
		}, "ACC1")
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(dec(1), out.Consolidated[1].PeriodReturn))
		require.Equal(t, "", cmp.Diff(dec(100), out.Nav))
		require.True(t, out.Consolidated[1].PnlPercent.IsZero())
	})

	t.Run("transaction-only dates have no value", func(t *testing.T) {
		txn := deposit("01/04/2024", 1000)
		txn.TradeDate = "31/03/2024"
		out, err := ComputeTwrrNav(
			[]domain.TransactionRecord{txn},
			[]domain.AumRecord{aumRow("01/04/2024", 1000)},
			"ACC1",
		)
		require.NoError(t, err)

		require.Len(t, out.Consolidated, 2)
		first := out.Consolidated[0]
		require.True(t, first.PortfolioValue.IsZero())
		require.Equal(t, notAvailable, first.AccountCode)
		require.Equal(t, notAvailable, first.SystemTag)
		// 1000 / (0 + 1000)
		require.Equal(t, "", cmp.Diff(dec(1), out.Consolidated[1].PeriodReturn))
		require.Equal(t, day(1), out.StartDate)
	})

	t.Run("unparseable dates are ignored", func(t *testing.T) {
		out, err := ComputeTwrrNav(nil, []domain.AumRecord{
			aumRow("01/04/2024", 100),
			aumRow("not a date", 500),
		}, " ACC1 ")
		require.NoError(t, err)

		require.Len(t, out.Consolidated, 1)
		require.Equal(t, 2, out.AumSnapshots)
		require.Equal(t, "ACC1", out.AccountCode)
	})

	t.Run("client name from transactions", func(t *testing.T) {
		out, err := ComputeTwrrNav([]domain.TransactionRecord{deposit("01/04/2024", 10)}, nil, "ACC1")
		require.NoError(t, err)
		require.Equal(t, "Jane Doe", out.ClientName)
		require.Equal(t, 1, out.Transactions)
	})

	t.Run("no data for account", func(t *testing.T) {
		_, err := ComputeTwrrNav(
			[]domain.TransactionRecord{deposit("01/04/2024", 10)},
			[]domain.AumRecord{aumRow("01/04/2024", 10)},
			"ACC2",
		)
		var noData desk_errors.ErrNoData
		require.True(t, errors.As(err, &noData))
		require.Equal(t, "No data found for account code: ACC2", err.Error())
	})
}

func withValues(
	p domain.TwrrPeriod,
	date time.Time,
	pv, prevPv, cashFlow, nav, prevNav, pnl, pnlPercent, prevPnl, drawdown, periodReturn, cumulative float64,
) domain.TwrrPeriod {
	p.Date = date
	p.PortfolioValue = dec(pv)
	p.PrevPortfolioValue = dec(prevPv)
	p.CashFlow = dec(cashFlow)
	p.Nav = dec(nav)
	p.PrevNav = dec(prevNav)
	p.Pnl = dec(pnl)
	p.PnlPercent = dec(pnlPercent)
	p.PrevPnl = dec(prevPnl)
	p.ExposureValue = dec(pv)
	p.PrevExposureValue = dec(prevPv)
	p.Drawdown = dec(drawdown)
	p.PeriodReturn = dec(periodReturn)
	p.CumulativeReturn = dec(cumulative)
	return p
}

func Test_RecordsFromRows(t *testing.T) {
	txns := TransactionRecordsFromRows([]map[string]any{
		{
			"WS ACCOUNT CODE": " ACC1 ",
			"Tran Desc":       "Corpus Deposits",
			"SET DATE":        "01/04/2024",
			"QTY":             "1,50,000",
			"Client name":     "Jane Doe - Growth",
		},
		{
			"WS Account code": "ACC1",
			"TRANDATE":        "02/04/2024",
			"SETDATE":         "03/04/2024",
			"QTY":             float64(25.5),
		},
	})
	require.Equal(t, "", cmp.Diff([]domain.TransactionRecord{
		{
			AccountCode: "ACC1",
			Description: "Corpus Deposits",
			SettleDate:  "01/04/2024",
			Quantity:    dec(150000),
			ClientName:  "Jane Doe - Growth",
		},
		{
			AccountCode: "ACC1",
			TradeDate:   "02/04/2024",
			SettleDate:  "03/04/2024",
			Quantity:    dec(25.5),
		},
	}, txns))

	aums := AumRecordsFromRows([]map[string]any{
		{"ACCOUNTCODE": "ACC1", "CLIENTNAME": "Jane Doe", "CLIENTID": float64(12345), "VALUEDATE": "01/04/2024", "AUM": float64(1e6)},
		{"ACCOUNTCODE": "ACC1", "AUM": "n/a"},
	})
	require.Equal(t, "", cmp.Diff([]domain.AumRecord{
		{AccountCode: "ACC1", ClientName: "Jane Doe", ClientID: "12345", ValueDate: "01/04/2024", Aum: dec(1e6)},
		{AccountCode: "ACC1", Aum: decimal.Zero},
	}, aums))
}

func Test_ComputeTwrrNav_LongSeries(t *testing.T) {
	start := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	aums := []domain.AumRecord{}
	for i := 0; i < 2000; i++ {
		value := 1000 + float64(i%7)*3.7 - float64(i%5)*2.3
		aums = append(aums, aumRow(start.AddDate(0, 0, i).Format("02/01/2006"), value))
	}

	began := time.Now()
	out, err := ComputeTwrrNav(nil, aums, "ACC1")
	require.NoError(t, err)
	for _, p := range out.Consolidated {
		p.Nav.InexactFloat64()
		p.CumulativeReturn.InexactFloat64()
	}
	require.Less(t, time.Since(began), 2*time.Second)

	require.Len(t, out.Consolidated, 2000)
	require.GreaterOrEqual(t, out.CumulativeReturn.Exponent(), int32(-returnPrecision))
	require.GreaterOrEqual(t, out.Nav.Exponent(), int32(-returnPrecision))
	require.True(t, out.Nav.IsPositive())
}
