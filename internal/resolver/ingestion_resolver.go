package resolver

import (
	"context"
	"fmt"
	api_types "pmsdesk/api-types"
	desk_errors "pmsdesk/internal"
	"pmsdesk/internal/category"
	"pmsdesk/internal/domain"
	"pmsdesk/internal/service"
	"time"
)

func (r resolverHandler) Upload(ctx context.Context, c category.Category, req api_types.UploadRequest, file UploadedFile) (*api_types.UploadResponse, error) {
	result, err := r.IngestionService.Stage(ctx, service.StageInput{
		Category:  c,
		Qcode:     req.Qcode,
		FileName:  file.Name,
		File:      file.Reader,
		Date:      req.Date,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return nil, err
	}

	failedRows := []api_types.FailedRow{}
	for _, f := range result.FailedRows {
		failedRows = append(failedRows, api_types.FailedRow{
			RowIndex: f.RowIndex,
			Error:    f.Error,
			Row:      f.Row,
		})
	}

	return &api_types.UploadResponse{
		Message:      result.Message(),
		Table:        result.Table,
		TotalRows:    result.TotalRows,
		InsertedRows: result.InsertedRows,
		SkippedRows:  result.SkippedRows,
		DeletedRows:  result.DeletedRows,
		FailedCount:  result.FailedCount,
		FailedRows:   failedRows,
		FirstError:   result.FirstError,
		ColumnNames:  result.ColumnNames,
	}, nil
}

func (r resolverHandler) Sync(ctx context.Context, c category.Category, req api_types.SyncRequest) (*api_types.SyncResponse, error) {
	outcome, err := r.SyncService.Sync(ctx, c, req.Qcodes)
	if err != nil {
		return nil, err
	}

	results := []api_types.SyncResult{}
	for _, res := range outcome.Results {
		results = append(results, api_types.SyncResult{
			Qcode:            res.Qcode,
			Status:           res.Status.String(),
			Message:          res.Message,
			RecordsDeleted:   res.RecordsDeleted,
			RecordsInserted:  res.RecordsInserted,
			RecordsProcessed: res.RecordsProcessed,
		})
	}

	return &api_types.SyncResponse{
		Success:       true,
		SyncTimestamp: outcome.SyncTimestamp.Format(time.RFC3339),
		Results:       results,
		Summary: api_types.SyncSummary{
			Total:      outcome.Summary.Total,
			Successful: outcome.Summary.Successful,
			Failed:     outcome.Summary.Failed,
			Skipped:    outcome.Summary.Skipped,
		},
	}, nil
}

func (r resolverHandler) SyncHistory(ctx context.Context, c category.Category, req api_types.SyncHistoryRequest) (*api_types.SyncHistoryResponse, error) {
	var qcode *string
	if req.Qcode != "" {
		qcode = &req.Qcode
	}

	history, err := r.HistoryService.History(ctx, c, qcode, req.Limit)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for status, n := range history.StatusCounts {
		counts[status.String()] = n
	}

	return &api_types.SyncHistoryResponse{
		Logs:          syncLogsToApi(history.Logs),
		LatestByQcode: syncLogsToApi(history.LatestByQcode),
		StatusCounts:  counts,
	}, nil
}

func syncLogsToApi(logs []domain.SyncLog) []api_types.SyncLog {
	out := []api_types.SyncLog{}
	for _, l := range logs {
		out = append(out, api_types.SyncLog{
			Qcode:            l.Qcode,
			ClientName:       l.ClientName,
			SyncType:         l.SyncType,
			Status:           l.Status.String(),
			RecordsDeleted:   l.RecordsDeleted,
			RecordsInserted:  l.RecordsInserted,
			RecordsProcessed: l.RecordsProcessed,
			ErrorMessage:     l.ErrorMessage,
			SyncTimestamp:    l.SyncTimestamp.Format(time.RFC3339),
			CreatedAt:        l.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}

func (r resolverHandler) DeleteRecords(ctx context.Context, c category.Category, req api_types.DeleteRecordsRequest) (*api_types.DeleteRecordsResponse, error) {
	stage, err := domain.ParseStage(req.Stage)
	if err != nil {
		return nil, desk_errors.ErrInvalidInput{Message: err.Error()}
	}

	deleted, err := r.HistoryService.DeleteRange(ctx, service.DeleteRangeInput{
		Category:  c,
		Stage:     stage,
		Qcode:     req.Qcode,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return nil, err
	}

	cfg := c.Config()
	table := cfg.StagingTable
	if stage == domain.StageProduction {
		table = cfg.ProductionTable
	}

	return &api_types.DeleteRecordsResponse{
		Message:      fmt.Sprintf("Deleted %d records from %s for %s", deleted, table, req.Qcode),
		DeletedCount: deleted,
	}, nil
}
