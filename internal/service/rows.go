package service

import (
	"fmt"
	"pmsdesk/internal/db/models/postgres/public/model"
	"pmsdesk/internal/normalize"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// fieldParser reads typed values out of one mapped row and keeps the first
// problem it runs into.
type fieldParser struct {
	fields map[string]string
	err    error
}

func (p *fieldParser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *fieldParser) requireFields(names []string) {
	missing := []string{}
	for _, n := range names {
		if normalize.IsBlank(p.fields[n]) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		p.fail(fmt.Errorf("missing mandatory fields: %s", strings.Join(missing, ", ")))
	}
}

func (p *fieldParser) text(name string) *string {
	v := strings.TrimSpace(p.fields[name])
	if v == "" {
		return nil
	}
	return &v
}

func (p *fieldParser) requiredText(name string) string {
	return strings.TrimSpace(p.fields[name])
}

// number returns nil for an empty cell and records an error for a cell that
// has content but is not numeric.
func (p *fieldParser) number(name string) *decimal.Decimal {
	raw := p.fields[name]
	if normalize.IsBlank(raw) {
		return nil
	}
	n := normalize.ParseNumber(raw)
	if n == nil {
		p.fail(fmt.Errorf("%s: %q is not a number", name, raw))
	}
	return n
}

func (p *fieldParser) percent(name string) *decimal.Decimal {
	raw := p.fields[name]
	if normalize.IsBlank(raw) {
		return nil
	}
	n := normalize.ParsePercent(raw)
	if n == nil {
		p.fail(fmt.Errorf("%s: %q is not a number", name, raw))
	}
	return n
}

func (p *fieldParser) requiredNumber(name string) decimal.Decimal {
	n := p.number(name)
	if n == nil {
		p.fail(fmt.Errorf("%s is required", name))
		return decimal.Zero
	}
	return *n
}

func (p *fieldParser) date(name string) time.Time {
	d, err := normalize.ParseDate(p.fields[name], false)
	if err != nil {
		p.fail(fmt.Errorf("%s: %w", name, err))
	}
	return d
}

func parseMasterSheetRow(qcode string, fields map[string]string, mandatory []string, now time.Time) (model.MasterSheet, error) {
	p := &fieldParser{fields: fields}
	p.requireFields(mandatory)
	if p.err != nil {
		return model.MasterSheet{}, p.err
	}

	row := model.MasterSheet{
		Qcode:              qcode,
		Date:               p.date("date"),
		PortfolioValue:     p.number("portfolio_value"),
		CapitalInOut:       p.number("capital_in_out"),
		Nav:                p.number("nav"),
		PrevNav:            p.number("prev_nav"),
		Pnl:                p.number("pnl"),
		DailyPL:            p.percent("daily_p_l"),
		ExposureValue:      p.number("exposure_value"),
		PrevPortfolioValue: p.number("prev_portfolio_value"),
		PrevExposureValue:  p.number("prev_exposure_value"),
		PrevPnl:            p.number("prev_pnl"),
		Drawdown:           p.percent("drawdown"),
		SystemTag:          p.requiredText("system_tag"),
		CreatedAt:          now,
	}
	if p.err != nil {
		return model.MasterSheet{}, p.err
	}
	return row, nil
}

func parseEquityHoldingRow(qcode string, date time.Time, fields map[string]string, mandatory []string, now time.Time) (model.EquityHolding, error) {
	p := &fieldParser{fields: fields}
	p.requireFields(mandatory)
	if p.err != nil {
		return model.EquityHolding{}, p.err
	}

	row := model.EquityHolding{
		Qcode:          qcode,
		Date:           date,
		Symbol:         p.requiredText("symbol"),
		MastersheetTag: p.text("mastersheet_tag"),
		Exchange:       p.text("exchange"),
		Quantity:       p.requiredNumber("quantity"),
		AvgPrice:       p.requiredNumber("avg_price"),
		Broker:         p.text("broker"),
		DebtEquity:     p.text("debt_equity"),
		SubCategory:    p.text("sub_category"),
		Ltp:            p.number("ltp"),
		BuyValue:       p.number("buy_value"),
		ValueAsOfToday: p.number("value_as_of_today"),
		PnlAmount:      p.number("pnl_amount"),
		PercentPnl:     p.percent("percent_pnl"),
		CreatedAt:      now,
	}
	if p.err != nil {
		return model.EquityHolding{}, p.err
	}
	return row, nil
}

// parseMutualFundRow uses the row's own As of Date when present, else the
// upload date.
func parseMutualFundRow(qcode string, date time.Time, fields map[string]string, mandatory []string, now time.Time) (model.MutualFundHoldingSheet, error) {
	p := &fieldParser{fields: fields}
	p.requireFields(mandatory)
	if p.err != nil {
		return model.MutualFundHoldingSheet{}, p.err
	}

	// the upload date wins over any As of Date column in the file
	row := model.MutualFundHoldingSheet{
		Qcode:          qcode,
		AsOfDate:       date,
		Symbol:         p.requiredText("symbol"),
		Isin:           p.requiredText("isin"),
		SchemeCode:     p.text("scheme_code"),
		Quantity:       p.requiredNumber("quantity"),
		AvgPrice:       p.requiredNumber("avg_price"),
		Broker:         p.text("broker"),
		DebtEquity:     p.text("debt_equity"),
		MastersheetTag: p.text("mastersheet_tag"),
		SubCategory:    p.text("sub_category"),
		Nav:            p.number("nav"),
		BuyValue:       p.number("buy_value"),
		ValueAsOfToday: p.number("value_as_of_today"),
		PnlAmount:      p.number("pnl_amount"),
		PercentPnl:     p.percent("percent_pnl"),
		CreatedAt:      now,
	}
	if p.err != nil {
		return model.MutualFundHoldingSheet{}, p.err
	}
	return row, nil
}
