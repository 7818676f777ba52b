package resolver

import (
	"context"
	api_types "pmsdesk/api-types"
	desk_errors "pmsdesk/internal"
	"pmsdesk/internal/domain"
	"pmsdesk/internal/metrics"
	"pmsdesk/internal/normalize"
	"pmsdesk/internal/spreadsheet"

	"github.com/sirupsen/logrus"
)

func (r resolverHandler) Twrr(ctx context.Context, req api_types.TwrrRequest) (*api_types.TwrrResponse, error) {
	return r.twrr(
		metrics.TransactionRecordsFromRows(req.TransactionData),
		metrics.AumRecordsFromRows(req.AumData),
		req.AccountCode,
	)
}

func (r resolverHandler) TwrrUpload(ctx context.Context, req api_types.TwrrUploadRequest, transactions, aum UploadedFile) (*api_types.TwrrResponse, error) {
	txnSheet, err := spreadsheet.Read(transactions.Name, transactions.Reader)
	if err != nil {
		return nil, desk_errors.ErrInvalidFile{FileName: transactions.Name, Reason: err.Error()}
	}
	aumSheet, err := spreadsheet.Read(aum.Name, aum.Reader)
	if err != nil {
		return nil, desk_errors.ErrInvalidFile{FileName: aum.Name, Reason: err.Error()}
	}

	return r.twrr(
		metrics.TransactionRecordsFromRows(txnSheet.Records()),
		metrics.AumRecordsFromRows(aumSheet.Records()),
		req.AccountCode,
	)
}

func (r resolverHandler) twrr(transactions []domain.TransactionRecord, aum []domain.AumRecord, accountCode string) (*api_types.TwrrResponse, error) {
	result, err := metrics.ComputeTwrrNav(transactions, aum, accountCode)
	if err != nil {
		return nil, err
	}

	r.Logger.WithFields(logrus.Fields{
		"accountCode":  result.AccountCode,
		"transactions": result.Transactions,
		"aum":          result.AumSnapshots,
		"nav":          result.Nav.StringFixed(4),
	}).Info("computed twrr nav")

	consolidated := []api_types.TwrrPeriod{}
	for _, p := range result.Consolidated {
		consolidated = append(consolidated, api_types.TwrrPeriod{
			ClientName:         result.ClientName,
			AccountCode:        p.AccountCode,
			Date:               p.Date.Format(normalize.DateLayout),
			PortfolioValue:     p.PortfolioValue.InexactFloat64(),
			CashInOut:          p.CashFlow.InexactFloat64(),
			Nav:                p.Nav.InexactFloat64(),
			PrevNav:            p.PrevNav.InexactFloat64(),
			Pnl:                p.Pnl.InexactFloat64(),
			PnlPercent:         p.PnlPercent.InexactFloat64(),
			ExposureValue:      p.ExposureValue.InexactFloat64(),
			PrevPortfolioValue: p.PrevPortfolioValue.InexactFloat64(),
			PrevExposureValue:  p.PrevExposureValue.InexactFloat64(),
			PrevPnl:            p.PrevPnl.InexactFloat64(),
			DrawdownPercent:    p.Drawdown.InexactFloat64(),
			SystemTag:          p.SystemTag,
			PeriodReturn:       p.PeriodReturn.InexactFloat64(),
			CumulativeReturn:   p.CumulativeReturn.InexactFloat64(),
		})
	}

	return &api_types.TwrrResponse{
		Success: true,
		Data: api_types.TwrrData{
			Nav:              result.Nav.InexactFloat64(),
			TotalPnl:         result.TotalPnl.InexactFloat64(),
			RealizedPnl:      result.RealizedPnl.InexactFloat64(),
			UnrealizedPnl:    result.UnrealizedPnl.InexactFloat64(),
			Consolidated:     consolidated,
			CumulativeReturn: result.CumulativeReturn.InexactFloat64(),
			AnnualizedReturn: result.AnnualizedReturn.InexactFloat64(),
		},
		ClientName:  result.ClientName,
		AccountCode: result.AccountCode,
		RecordsProcessed: api_types.RecordsProcessed{
			Transactions: result.Transactions,
			Aum:          result.AumSnapshots,
		},
	}, nil
}
