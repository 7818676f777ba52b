package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const CorpusDeposits = "Corpus Deposits"

type TransactionRecord struct {
	AccountCode string
	Description string
	TradeDate   string
	SettleDate  string
	Quantity    decimal.Decimal
	ClientName  string
}

type AumRecord struct {
	AccountCode string
	ClientName  string
	ClientID    string
	ValueDate   string
	Aum         decimal.Decimal
}

type TwrrPeriod struct {
	Date               time.Time
	AccountCode        string
	SystemTag          string
	PortfolioValue     decimal.Decimal
	PrevPortfolioValue decimal.Decimal
	CashFlow           decimal.Decimal
	Nav                decimal.Decimal
	PrevNav            decimal.Decimal
	Pnl                decimal.Decimal
	PnlPercent         decimal.Decimal
	PrevPnl            decimal.Decimal
	ExposureValue      decimal.Decimal
	PrevExposureValue  decimal.Decimal
	Drawdown           decimal.Decimal
	PeriodReturn       decimal.Decimal
	CumulativeReturn   decimal.Decimal
}

type TwrrResult struct {
	ClientName       string
	AccountCode      string
	StartDate        time.Time
	Nav              decimal.Decimal
	TotalPnl         decimal.Decimal
	RealizedPnl      decimal.Decimal
	UnrealizedPnl    decimal.Decimal
	CumulativeReturn decimal.Decimal
	AnnualizedReturn decimal.Decimal
	Consolidated     []TwrrPeriod
	Transactions     int
	AumSnapshots     int
}
