package table

// Staging tables are created with LIKE <production> and share its columns.
// They are aliased to the production table name so query results scan into
// the production model types.
var (
	MasterSheetTest            = newMasterSheetTable("public", "master_sheet_test", "master_sheet")
	EquityHoldingTest          = newEquityHoldingTable("public", "equity_holding_test", "equity_holding")
	MutualFundHoldingSheetTest = newMutualFundHoldingSheetTable("public", "mutual_fund_holding_sheet_test", "mutual_fund_holding_sheet")
)
