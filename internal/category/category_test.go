package category

import (
	"errors"
	desk_errors "pmsdesk/internal"
	"pmsdesk/internal/db/models/postgres/public/model"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("Master-Sheet")
	require.NoError(t, err)
	require.Equal(t, MasterSheet, c)

	_, err = Parse("master_sheet_abc")
	var unknown desk_errors.ErrUnknownCategory
	require.True(t, errors.As(err, &unknown))
}

func TestValidateHeaders(t *testing.T) {
	required := MasterSheet.Config().RequiredColumns

	t.Run("all present with bom", func(t *testing.T) {
		headers := append([]string{}, required...)
		headers[0] = "\ufeffDate "
		check := ValidateHeaders(headers, required)
		require.True(t, check.OK())
	})

	t.Run("missing one", func(t *testing.T) {
		headers := []string{}
		for _, r := range required {
			if r != "Drawdown %" {
				headers = append(headers, r)
			}
		}
		check := ValidateHeaders(headers, required)
		require.Equal(t, []string{"Drawdown %"}, check.Missing)
	})

	t.Run("case sensitive", func(t *testing.T) {
		check := ValidateHeaders([]string{"symbol"}, []string{"Symbol"})
		require.Equal(t, []string{"Symbol"}, check.Missing)
	})

	t.Run("optional columns are not required", func(t *testing.T) {
		cfg := MutualFundHolding.Config()
		require.NotContains(t, cfg.RequiredColumns, "Scheme Code")
		require.NotContains(t, cfg.RequiredColumns, "As of Date")
		require.True(t, ValidateHeaders(cfg.RequiredColumns, cfg.RequiredColumns).OK())
	})
}

func TestHoldingSyncType(t *testing.T) {
	require.Empty(t, MasterSheet.Config().HoldingSyncType)
	require.Equal(t, model.HoldingSyncType_Equity, EquityHolding.Config().HoldingSyncType)
	require.Equal(t, model.HoldingSyncType_MutualFund, MutualFundHolding.Config().HoldingSyncType)
}

func TestFieldName(t *testing.T) {
	cfg := EquityHolding.Config()
	require.Equal(t, "avg_price", cfg.FieldName("AVG PRICE"))
	require.Equal(t, "percent_pnl", cfg.FieldName("% PNL"))
	require.Equal(t, "debt_equity", cfg.FieldName("Debt/Equity"))
	require.Equal(t, "isincode", cfg.FieldName("ISIN-Code"))
	require.Equal(t, "market_cap_cr", cfg.FieldName(" Market Cap (Cr) "))
}

func TestFields(t *testing.T) {
	cfg := EquityHolding.Config()
	fields := cfg.Fields(
		[]string{"Symbol", "Quantity", "Avg Price"},
		[]string{" INFY ", "10"},
	)
	require.Equal(t, map[string]string{
		"symbol":    "INFY",
		"quantity":  "10",
		"avg_price": "",
	}, fields)
}
