package metrics

import (
	"encoding/json"
	"fmt"
	"math"
	desk_errors "pmsdesk/internal"
	"pmsdesk/internal/domain"
	"pmsdesk/internal/normalize"
	"pmsdesk/internal/util"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	notAvailable   = "N/A"
	unknownClient  = "Unknown"
	daysInYear     = 365
	systemTagChars = 3
	// decimal places kept on period and cumulative returns
	returnPrecision = 16
)

var (
	one        = decimal.NewFromInt(1)
	hundred    = decimal.NewFromInt(100)
	initialNav = decimal.NewFromInt(100)
)

// TransactionRecordsFromRows decodes rows of a custodian transaction export.
// Cells may be strings or JSON numbers.
func TransactionRecordsFromRows(rows []map[string]any) []domain.TransactionRecord {
	out := make([]domain.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.TransactionRecord{
			AccountCode: cellText(row, "WS Account code", "WS ACCOUNT CODE"),
			Description: cellText(row, "Tran Desc"),
			TradeDate:   cellText(row, "TRANDATE"),
			SettleDate:  cellText(row, "SETDATE", "SET DATE"),
			Quantity:    cellNumber(row, "QTY"),
			ClientName:  cellText(row, "Client name"),
		})
	}
	return out
}

// AumRecordsFromRows decodes rows of a daily AUM export.
func AumRecordsFromRows(rows []map[string]any) []domain.AumRecord {
	out := make([]domain.AumRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AumRecord{
			AccountCode: cellText(row, "ACCOUNTCODE"),
			ClientName:  cellText(row, "CLIENTNAME"),
			ClientID:    cellText(row, "CLIENTID"),
			ValueDate:   cellText(row, "VALUEDATE"),
			Aum:         cellNumber(row, "AUM"),
		})
	}
	return out
}

func cellText(row map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := row[k]
		if !ok || v == nil {
			continue
		}
		var s string
		switch t := v.(type) {
		case string:
			s = t
		case float64:
			s = strconv.FormatFloat(t, 'f', -1, 64)
		case json.Number:
			s = t.String()
		default:
			s = fmt.Sprint(t)
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

func cellNumber(row map[string]any, keys ...string) decimal.Decimal {
	n := normalize.ParseNumber(cellText(row, keys...))
	if n == nil {
		return decimal.Zero
	}
	return *n
}

func isCorpusDeposit(t domain.TransactionRecord) bool {
	return strings.TrimSpace(t.Description) == domain.CorpusDeposits
}

func dayKey(t time.Time) string {
	return t.Format(normalize.DateLayout)
}

// ComputeTwrrNav builds a daily NAV series for one account, starting at 100
// and chaining time-weighted period returns. Corpus deposits are the only
// cash flows.
func ComputeTwrrNav(transactions []domain.TransactionRecord, aum []domain.AumRecord, accountCode string) (*domain.TwrrResult, error) {
	accountCode = strings.TrimSpace(accountCode)

	txns := []domain.TransactionRecord{}
	for _, t := range transactions {
		if strings.TrimSpace(t.AccountCode) == accountCode {
			txns = append(txns, t)
		}
	}
	aums := []domain.AumRecord{}
	for _, a := range aum {
		if strings.TrimSpace(a.AccountCode) == accountCode {
			aums = append(aums, a)
		}
	}
	if len(txns) == 0 && len(aums) == 0 {
		return nil, desk_errors.ErrNoData{AccountCode: accountCode}
	}

	dates := timeline(txns, aums)

	// first AUM row per day wins
	aumByDay := map[string]domain.AumRecord{}
	var latestAum *domain.AumRecord
	var latestAumDay, firstAumDay time.Time
	for i, a := range aums {
		day, ok := normalize.ParseDayFirstDate(a.ValueDate)
		if !ok {
			continue
		}
		if _, seen := aumByDay[dayKey(day)]; !seen {
			aumByDay[dayKey(day)] = a
		}
		if latestAum == nil || day.After(latestAumDay) {
			latestAum = &aums[i]
			latestAumDay = day
		}
		if firstAumDay.IsZero() || day.Before(firstAumDay) {
			firstAumDay = day
		}
	}

	depositsByDay := map[string]decimal.Decimal{}
	var firstDepositDay time.Time
	for _, t := range txns {
		if !isCorpusDeposit(t) {
			continue
		}
		day, ok := normalize.ParseDayFirstDate(t.SettleDate)
		if !ok {
			continue
		}
		depositsByDay[dayKey(day)] = depositsByDay[dayKey(day)].Add(t.Quantity)
		if firstDepositDay.IsZero() || day.Before(firstDepositDay) {
			firstDepositDay = day
		}
	}

	startDate := firstDepositDay
	if startDate.IsZero() {
		startDate = firstAumDay
	}
	if startDate.IsZero() && len(dates) > 0 {
		startDate = dates[0]
	}

	valueOn := func(i int) decimal.Decimal {
		if i < 0 {
			return decimal.Zero
		}
		if a, ok := aumByDay[dayKey(dates[i])]; ok {
			return a.Aum
		}
		return decimal.Zero
	}

	cumulative := one
	prevNav := initialNav
	peak := decimal.Zero
	periods := make([]domain.TwrrPeriod, 0, len(dates))

	for i, day := range dates {
		pv := valueOn(i)
		prevPv := pv
		if i > 0 {
			prevPv = valueOn(i - 1)
		}
		cashFlow := depositsByDay[dayKey(day)]

		periodReturn := one
		nav := initialNav
		if i > 0 {
			periodReturn = hp(prevPv, pv, cashFlow)
			cumulative = cumulative.Mul(periodReturn).Round(returnPrecision)
			nav = initialNav.Mul(cumulative)
		}

		pnl := pv.Sub(prevPv).Sub(cashFlow)
		pnlPercent := decimal.Zero
		if prevPv.IsPositive() {
			pnlPercent = pnl.Div(prevPv).Mul(hundred)
		}

		if i == 0 || pv.GreaterThan(peak) {
			peak = pv
		}
		drawdown := decimal.Zero
		if peak.IsPositive() {
			drawdown = peak.Sub(pv).Div(peak).Mul(hundred)
		}

		prevPnl := decimal.Zero
		if i > 0 {
			prevPnl = prevPv.Sub(valueOn(i - 2))
		}

		periodAccount, systemTag := notAvailable, notAvailable
		if a, ok := aumByDay[dayKey(day)]; ok {
			if a.AccountCode != "" {
				periodAccount = a.AccountCode
			}
			systemTag = systemTagFromClientID(a.ClientID)
		}

		periods = append(periods, domain.TwrrPeriod{
			Date:               day,
			AccountCode:        periodAccount,
			SystemTag:          systemTag,
			PortfolioValue:     pv,
			PrevPortfolioValue: prevPv,
			CashFlow:           cashFlow,
			Nav:                nav,
			PrevNav:            prevNav,
			Pnl:                pnl,
			PnlPercent:         pnlPercent,
			PrevPnl:            prevPnl,
			ExposureValue:      pv,
			PrevExposureValue:  prevPv,
			Drawdown:           drawdown,
			PeriodReturn:       periodReturn,
			CumulativeReturn:   cumulative,
		})
		prevNav = nav
	}

	depositsSinceStart := decimal.Zero
	for _, t := range txns {
		if !isCorpusDeposit(t) {
			continue
		}
		day, ok := normalize.ParseDayFirstDate(t.SettleDate)
		if ok && !day.Before(startDate) {
			depositsSinceStart = depositsSinceStart.Add(t.Quantity)
		}
	}

	currentValue := decimal.Zero
	if latestAum != nil {
		currentValue = latestAum.Aum
	}
	totalPnl := currentValue.Sub(depositsSinceStart)

	return &domain.TwrrResult{
		ClientName:       clientName(txns, aums),
		AccountCode:      accountCode,
		StartDate:        startDate,
		Nav:              initialNav.Mul(cumulative),
		TotalPnl:         totalPnl,
		RealizedPnl:      decimal.Zero,
		UnrealizedPnl:    totalPnl,
		CumulativeReturn: cumulative,
		AnnualizedReturn: annualize(cumulative, len(dates)),
		Consolidated:     periods,
		Transactions:     len(txns),
		AumSnapshots:     len(aums),
	}, nil
}

// timeline is the sorted set of calendar days seen in either export.
// Transactions are dated by trade date, falling back to settle date.
// Dates that do not parse are dropped.
func timeline(txns []domain.TransactionRecord, aums []domain.AumRecord) []time.Time {
	days := util.NewSet()
	add := func(raw string) {
		if day, ok := normalize.ParseDayFirstDate(raw); ok {
			days.Add(dayKey(day))
		}
	}
	for _, t := range txns {
		if t.TradeDate != "" {
			add(t.TradeDate)
		} else {
			add(t.SettleDate)
		}
	}
	for _, a := range aums {
		add(a.ValueDate)
	}

	out := make([]time.Time, 0, days.Length())
	for _, key := range days.List() {
		day, _ := time.Parse(normalize.DateLayout, key)
		out = append(out, day)
	}
	return out
}

// https://www.investopedia.com/terms/t/time-weightedror.asp
func hp(start, end, cashFlow decimal.Decimal) decimal.Decimal {
	denominator := start.Add(cashFlow)
	if !denominator.IsPositive() {
		return one
	}
	return end.DivRound(denominator, returnPrecision)
}

func annualize(cumulative decimal.Decimal, periods int) decimal.Decimal {
	if periods == 0 {
		return decimal.Zero
	}
	c, _ := cumulative.Float64()
	r := (math.Pow(c, float64(daysInYear)/float64(periods)) - 1) * 100
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(r)
}

func systemTagFromClientID(clientID string) string {
	id := []rune(strings.TrimSpace(clientID))
	if len(id) == 0 {
		return notAvailable
	}
	if len(id) > systemTagChars {
		id = id[:systemTagChars]
	}
	return strings.ToUpper(string(id))
}

func clientName(txns []domain.TransactionRecord, aums []domain.AumRecord) string {
	if len(aums) > 0 {
		if aums[0].ClientName != "" {
			return aums[0].ClientName
		}
		return unknownClient
	}
	if len(txns) > 0 {
		name := strings.TrimSpace(strings.Split(txns[0].ClientName, " - ")[0])
		if name != "" {
			return name
		}
	}
	return unknownClient
}
