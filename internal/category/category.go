package category

import (
	"fmt"
	desk_errors "pmsdesk/internal"
	"pmsdesk/internal/db/models/postgres/public/model"
	"strings"
	"unicode"
)

// Category is one of the uploadable data sets. Each has a staging table that
// uploads replace and a production table that sync promotes into.
type Category string

const (
	MasterSheet       Category = "master-sheet"
	EquityHolding     Category = "equity-holding"
	MutualFundHolding Category = "mutual-fund-holding"
)

func All() []Category {
	return []Category{MasterSheet, EquityHolding, MutualFundHolding}
}

func Parse(slug string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(slug)))
	switch c {
	case MasterSheet, EquityHolding, MutualFundHolding:
		return c, nil
	}
	return "", desk_errors.ErrUnknownCategory{Category: slug}
}

func (c Category) String() string {
	return string(c)
}

type Config struct {
	Category        Category
	StagingTable    string
	ProductionTable string
	// RequiredColumns must all appear in the upload header, verbatim.
	RequiredColumns []string
	OptionalColumns []string
	// MandatoryFields are canonical field names that must be non-empty per row.
	MandatoryFields []string
	// RequiresDate marks uploads that take the holding date from the form
	// instead of from each row.
	RequiresDate bool
	// BulkInsert stages rows with multi-row inserts instead of one at a time.
	BulkInsert bool
	// HoldingSyncType tags rows in holding_sync_logs. Empty for the master
	// sheet, which has its own log table.
	HoldingSyncType model.HoldingSyncType

	columnFields map[string]string
}

var configs = map[Category]Config{
	MasterSheet: newConfig(Config{
		Category:        MasterSheet,
		StagingTable:    "master_sheet_test",
		ProductionTable: "master_sheet",
		MandatoryFields: []string{"date", "system_tag"},
		BulkInsert:      true,
	}, [][2]string{
		{"Date", "date"},
		{"Portfolio Value", "portfolio_value"},
		{"Cash In/Out", "capital_in_out"},
		{"NAV", "nav"},
		{"Prev NAV", "prev_nav"},
		{"PnL", "pnl"},
		{"Daily P/L %", "daily_p_l"},
		{"Exposure Value", "exposure_value"},
		{"Prev Portfolio Value", "prev_portfolio_value"},
		{"Prev Exposure Value", "prev_exposure_value"},
		{"Prev Pnl", "prev_pnl"},
		{"Drawdown %", "drawdown"},
		{"System Tag", "system_tag"},
	}, nil),

	EquityHolding: newConfig(Config{
		Category:        EquityHolding,
		StagingTable:    "equity_holding_test",
		ProductionTable: "equity_holding",
		MandatoryFields: []string{"symbol", "quantity", "avg_price"},
		RequiresDate:    true,
		HoldingSyncType: model.HoldingSyncType_Equity,
	}, [][2]string{
		{"Symbol", "symbol"},
		{"Mastersheet Tag", "mastersheet_tag"},
		{"Exchange", "exchange"},
		{"Quantity", "quantity"},
		{"Avg Price", "avg_price"},
		{"Broker", "broker"},
		{"Debt/Equity", "debt_equity"},
		{"Sub Category", "sub_category"},
		{"LTP", "ltp"},
		{"Buy Value", "buy_value"},
		{"Value as of Today", "value_as_of_today"},
		{"PNL Amount", "pnl_amount"},
		{"% PNL", "percent_pnl"},
	}, nil),

	MutualFundHolding: newConfig(Config{
		Category:        MutualFundHolding,
		StagingTable:    "mutual_fund_holding_sheet_test",
		ProductionTable: "mutual_fund_holding_sheet",
		MandatoryFields: []string{"symbol", "isin", "quantity", "avg_price"},
		RequiresDate:    true,
		HoldingSyncType: model.HoldingSyncType_MutualFund,
	}, [][2]string{
		{"Symbol", "symbol"},
		{"ISIN", "isin"},
		{"Quantity", "quantity"},
		{"Avg Price", "avg_price"},
		{"Broker", "broker"},
		{"Debt/Equity", "debt_equity"},
		{"Mastersheet Tag", "mastersheet_tag"},
		{"Sub Category", "sub_category"},
		{"NAV", "nav"},
		{"Buy Value", "buy_value"},
		{"Value as of Today", "value_as_of_today"},
		{"PNL Amount", "pnl_amount"},
		{"% PNL", "percent_pnl"},
	}, [][2]string{
		{"As of Date", "as_of_date"},
		{"Scheme Code", "scheme_code"},
	}),
}

func newConfig(c Config, required, optional [][2]string) Config {
	c.columnFields = map[string]string{}
	for _, col := range required {
		c.RequiredColumns = append(c.RequiredColumns, col[0])
		c.columnFields[strings.ToLower(col[0])] = col[1]
	}
	for _, col := range optional {
		c.OptionalColumns = append(c.OptionalColumns, col[0])
		c.columnFields[strings.ToLower(col[0])] = col[1]
	}
	return c
}

func (c Category) Config() Config {
	cfg, ok := configs[c]
	if !ok {
		// Category values only come from the constants or Parse.
		panic(fmt.Sprintf("no config for category %q", string(c)))
	}
	return cfg
}

// FieldName maps an upload header to its canonical field name. Known
// headers match case-insensitively; anything else is lowercased, stripped
// of punctuation and snake-cased.
func (c Config) FieldName(header string) string {
	h := CleanHeader(header)
	if field, ok := c.columnFields[strings.ToLower(h)]; ok {
		return field
	}
	return fallbackFieldName(h)
}

func fallbackFieldName(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(header) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), "_")
}
