package service

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"path/filepath"
	desk_errors "pmsdesk/internal"
	"pmsdesk/internal/category"
	"pmsdesk/internal/db/models/postgres/public/model"
	db "pmsdesk/internal/db/query"
	"pmsdesk/internal/domain"
	"pmsdesk/internal/normalize"
	"pmsdesk/internal/repository"
	"pmsdesk/internal/spreadsheet"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultBatchSize            = 500
	defaultFailedRowReportLimit = 10
)

type StageInput struct {
	Category category.Category
	Qcode    string
	FileName string
	File     io.Reader
	// Date is the holding date for holdings uploads, YYYY-MM-DD.
	Date string
	// StartDate and EndDate optionally restrict which rows are staged.
	StartDate string
	EndDate   string
}

type IngestionConfig struct {
	BatchSize            int
	FailedRowReportLimit int
}

// IngestionService replaces an account's staged rows with the contents of an
// uploaded file.
type IngestionService interface {
	Stage(ctx context.Context, input StageInput) (*domain.StageResult, error)
}

func NewIngestionService(
	txRunner db.TxRunner,
	accountRepository repository.AccountRepository,
	masterSheetRepository repository.MasterSheetRepository,
	equityHoldingRepository repository.EquityHoldingRepository,
	mutualFundHoldingRepository repository.MutualFundHoldingRepository,
	cfg IngestionConfig,
	logger logrus.FieldLogger,
) IngestionService {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.FailedRowReportLimit <= 0 {
		cfg.FailedRowReportLimit = defaultFailedRowReportLimit
	}
	return ingestionServiceHandler{
		TxRunner:          txRunner,
		AccountRepository: accountRepository,
		Store: categoryStore{
			MasterSheetRepository:       masterSheetRepository,
			EquityHoldingRepository:     equityHoldingRepository,
			MutualFundHoldingRepository: mutualFundHoldingRepository,
		},
		Config: cfg,
		Logger: logger,
		now:    time.Now,
	}
}

type ingestionServiceHandler struct {
	TxRunner          db.TxRunner
	AccountRepository repository.AccountRepository
	Store             categoryStore
	Config            IngestionConfig
	Logger            logrus.FieldLogger

	now func() time.Time
}

func (h ingestionServiceHandler) Stage(ctx context.Context, in StageInput) (*domain.StageResult, error) {
	cfg := in.Category.Config()
	logger := h.Logger.WithFields(logrus.Fields{
		"category": in.Category.String(),
		"qcode":    in.Qcode,
		"file":     in.FileName,
	})

	if strings.TrimSpace(in.Qcode) == "" {
		return nil, desk_errors.ErrInvalidInput{Message: "qcode is required"}
	}
	if !strings.EqualFold(filepath.Ext(in.FileName), ".csv") {
		return nil, desk_errors.ErrInvalidFile{FileName: in.FileName, Reason: "only .csv files are accepted"}
	}

	var holdingDate time.Time
	if cfg.RequiresDate {
		if normalize.IsBlank(in.Date) {
			return nil, desk_errors.ErrInvalidInput{Message: fmt.Sprintf("date is required for %s uploads", in.Category)}
		}
		d, err := normalize.ParseDate(in.Date, false)
		if err != nil {
			return nil, desk_errors.ErrInvalidInput{Message: err.Error()}
		}
		holdingDate = d
	}

	dateRange, err := parseOptionalRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	if err := ensureAccount(ctx, h.TxRunner, h.AccountRepository, in.Qcode); err != nil {
		return nil, err
	}

	sheet, err := spreadsheet.ReadCSV(in.File)
	if err != nil {
		return nil, desk_errors.ErrInvalidFile{FileName: in.FileName, Reason: err.Error()}
	}
	if len(sheet.Headers) == 0 || len(sheet.Rows) == 0 {
		return nil, desk_errors.ErrEmptyFile{}
	}

	check := category.ValidateHeaders(sheet.Headers, cfg.RequiredColumns)
	if !check.OK() {
		return nil, desk_errors.ErrMissingColumns{
			Missing:     check.Missing,
			ColumnNames: sheet.Headers,
		}
	}

	result := &domain.StageResult{
		Table:       cfg.StagingTable,
		TotalRows:   len(sheet.Rows),
		ColumnNames: sheet.Headers,
		FailedRows:  []domain.FailedRow{},
	}

	err = h.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		n, err := h.Store.deleteByQcode(tx, in.Category, domain.StageStaging, in.Qcode)
		result.DeletedRows = n
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clear staged rows for %s: %w", in.Qcode, err)
	}

	run := stageRun{
		ctx:      ctx,
		txRunner: h.TxRunner,
		sheet:    sheet,
		cfg:      cfg,
		result:   result,
		limit:    h.Config.FailedRowReportLimit,
		batch:    h.Config.BatchSize,
		logger:   logger,
	}
	now := h.now().UTC()
	inRange := func(d time.Time) bool {
		return dateRange == nil || dateRange.Contains(d)
	}

	switch in.Category {
	case category.MasterSheet:
		err = stageRows(run, stageTarget[model.MasterSheet]{
			parse: func(fields map[string]string) (model.MasterSheet, bool, error) {
				row, err := parseMasterSheetRow(in.Qcode, fields, cfg.MandatoryFields, now)
				return row, inRange(row.Date), err
			},
			insert: func(tx *sql.Tx, rows []model.MasterSheet) error {
				return h.Store.MasterSheetRepository.Add(tx, domain.StageStaging, rows)
			},
			bulk: cfg.BulkInsert,
		})
	case category.EquityHolding:
		err = stageRows(run, stageTarget[model.EquityHolding]{
			parse: func(fields map[string]string) (model.EquityHolding, bool, error) {
				row, err := parseEquityHoldingRow(in.Qcode, holdingDate, fields, cfg.MandatoryFields, now)
				return row, inRange(row.Date), err
			},
			insert: func(tx *sql.Tx, rows []model.EquityHolding) error {
				return h.Store.EquityHoldingRepository.Add(tx, domain.StageStaging, rows)
			},
			bulk: cfg.BulkInsert,
		})
	case category.MutualFundHolding:
		err = stageRows(run, stageTarget[model.MutualFundHoldingSheet]{
			parse: func(fields map[string]string) (model.MutualFundHoldingSheet, bool, error) {
				row, err := parseMutualFundRow(in.Qcode, holdingDate, fields, cfg.MandatoryFields, now)
				return row, inRange(row.AsOfDate), err
			},
			insert: func(tx *sql.Tx, rows []model.MutualFundHoldingSheet) error {
				return h.Store.MutualFundHoldingRepository.Add(tx, domain.StageStaging, rows)
			},
			bulk: cfg.BulkInsert,
		})
	default:
		err = desk_errors.ErrUnknownCategory{Category: in.Category.String()}
	}
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"inserted": result.InsertedRows,
		"failed":   result.FailedCount,
		"skipped":  result.SkippedRows,
		"deleted":  result.DeletedRows,
	}).Info("staged upload")

	return result, nil
}

type stageTarget[T any] struct {
	// parse returns the typed row and whether it falls inside the requested
	// date range.
	parse  func(fields map[string]string) (T, bool, error)
	insert func(tx *sql.Tx, rows []T) error
	bulk   bool
}

type stageRun struct {
	ctx      context.Context
	txRunner db.TxRunner
	sheet    *spreadsheet.Sheet
	cfg      category.Config
	result   *domain.StageResult
	limit    int
	batch    int
	logger   logrus.FieldLogger
}

func (r stageRun) fail(line int, cells []string, err error) {
	r.result.FailedCount++
	if r.result.FirstError == nil {
		msg := fmt.Sprintf("Row %d: %s", line, err.Error())
		r.result.FirstError = &msg
	}
	if len(r.result.FailedRows) < r.limit {
		r.result.FailedRows = append(r.result.FailedRows, domain.FailedRow{
			RowIndex: line,
			Error:    err.Error(),
			Row:      category.RawRow(r.sheet.Headers, cells),
		})
	}
	r.logger.WithField("rowIndex", line).WithError(err).Debug("row rejected")
}

type pendingRow[T any] struct {
	line  int
	cells []string
	row   T
}

// stageRows parses every row, then inserts accepted rows in transactions of
// up to r.batch rows. Bulk targets try one multi-row insert per batch and
// fall back to row-by-row inserts when it fails.
func stageRows[T any](r stageRun, target stageTarget[T]) error {
	pending := make([]pendingRow[T], 0, r.batch)

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		inserted := 0
		failed := []int{}
		failures := map[int]error{}

		err := r.txRunner.RunInTx(r.ctx, func(tx *sql.Tx) error {
			inserted = 0
			failed = failed[:0]
			if target.bulk {
				rows := make([]T, len(pending))
				for i, p := range pending {
					rows[i] = p.row
				}
				err := target.insert(tx, rows)
				if err == nil {
					inserted = len(rows)
					return nil
				}
				r.logger.WithError(err).Warn("batch insert failed, retrying rows individually")
			}

			for i, p := range pending {
				if err := target.insert(tx, []T{p.row}); err != nil {
					failed = append(failed, i)
					failures[i] = err
					continue
				}
				inserted++
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to stage batch: %w", err)
		}

		r.result.InsertedRows += inserted
		for _, i := range failed {
			r.fail(pending[i].line, pending[i].cells, failures[i])
		}
		pending = pending[:0]
		return nil
	}

	for _, row := range r.sheet.Rows {
		fields := r.cfg.Fields(r.sheet.Headers, row.Cells)
		parsed, inRange, err := target.parse(fields)
		if err != nil {
			r.fail(row.Line, row.Cells, err)
			continue
		}
		if !inRange {
			r.result.SkippedRows++
			continue
		}

		pending = append(pending, pendingRow[T]{line: row.Line, cells: row.Cells, row: parsed})
		if len(pending) >= r.batch {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	return flush()
}
