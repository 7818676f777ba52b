package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	desk_errors "pmsdesk/internal"
	"pmsdesk/internal/category"
	"pmsdesk/internal/db/models/postgres/public/model"
	db "pmsdesk/internal/db/query"
	"pmsdesk/internal/domain"
	"pmsdesk/internal/repository"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// keeps multi-row inserts under the postgres bind parameter limit
const promoteChunkSize = 1000

var errNothingStaged = errors.New("nothing staged")

// SyncService promotes staged rows into production, one account at a time.
type SyncService interface {
	Sync(ctx context.Context, c category.Category, qcodes []string) (*domain.SyncOutcome, error)
}

func NewSyncService(
	txRunner db.TxRunner,
	accountRepository repository.AccountRepository,
	masterSheetRepository repository.MasterSheetRepository,
	equityHoldingRepository repository.EquityHoldingRepository,
	mutualFundHoldingRepository repository.MutualFundHoldingRepository,
	syncLogRepository repository.SyncLogRepository,
	logger logrus.FieldLogger,
) SyncService {
	return syncServiceHandler{
		TxRunner:          txRunner,
		AccountRepository: accountRepository,
		Store: categoryStore{
			MasterSheetRepository:       masterSheetRepository,
			EquityHoldingRepository:     equityHoldingRepository,
			MutualFundHoldingRepository: mutualFundHoldingRepository,
		},
		SyncLogRepository: syncLogRepository,
		Logger:            logger,
		now:               time.Now,
	}
}

type syncServiceHandler struct {
	TxRunner          db.TxRunner
	AccountRepository repository.AccountRepository
	Store             categoryStore
	SyncLogRepository repository.SyncLogRepository
	Logger            logrus.FieldLogger

	now func() time.Time
}

type promotion struct {
	deleted   int64
	inserted  int64
	processed int64
}

func (h syncServiceHandler) Sync(ctx context.Context, c category.Category, qcodes []string) (*domain.SyncOutcome, error) {
	cleaned := []string{}
	for _, q := range qcodes {
		if q = strings.TrimSpace(q); q != "" {
			cleaned = append(cleaned, q)
		}
	}
	if len(cleaned) == 0 {
		return nil, desk_errors.ErrInvalidInput{Message: "qcodes must be a non-empty array"}
	}

	outcome := &domain.SyncOutcome{
		SyncTimestamp: h.now().UTC(),
		Results:       []domain.SyncResult{},
	}
	for _, qcode := range cleaned {
		logger := h.Logger.WithFields(logrus.Fields{
			"category": c.String(),
			"qcode":    qcode,
		})

		clientName := h.clientName(ctx, qcode, logger)
		result := h.syncOne(ctx, c, qcode, outcome.SyncTimestamp, logger)
		h.writeLog(ctx, c, clientName, outcome.SyncTimestamp, result, logger)

		outcome.Add(result)
	}

	return outcome, nil
}

func (h syncServiceHandler) syncOne(ctx context.Context, c category.Category, qcode string, syncTimestamp time.Time, logger logrus.FieldLogger) domain.SyncResult {
	cfg := c.Config()

	var p promotion
	err := h.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		var err error
		p, err = h.promote(tx, c, qcode, syncTimestamp)
		return err
	})

	if errors.Is(err, errNothingStaged) {
		zero := int64(0)
		return domain.SyncResult{
			Qcode:           qcode,
			Status:          model.SyncStatus_Skipped,
			Message:         fmt.Sprintf("No data found in %s", cfg.StagingTable),
			RecordsDeleted:  &zero,
			RecordsInserted: &zero,
		}
	}
	if err != nil {
		logger.WithError(err).Error("sync failed")
		return domain.SyncResult{
			Qcode:            qcode,
			Status:           model.SyncStatus_Error,
			Message:          err.Error(),
			RecordsProcessed: p.processed,
		}
	}

	logger.WithFields(logrus.Fields{
		"deleted":  p.deleted,
		"inserted": p.inserted,
	}).Info("synced")

	return domain.SyncResult{
		Qcode:            qcode,
		Status:           model.SyncStatus_Success,
		Message:          fmt.Sprintf("Synced %d records from %s to %s", p.inserted, cfg.StagingTable, cfg.ProductionTable),
		RecordsDeleted:   &p.deleted,
		RecordsInserted:  &p.inserted,
		RecordsProcessed: p.processed,
	}
}

// promote replaces the production rows of qcode with its staged rows. It
// runs inside the caller's transaction so a failure leaves production as it
// was.
func (h syncServiceHandler) promote(tx *sql.Tx, c category.Category, qcode string, syncTimestamp time.Time) (promotion, error) {
	switch c {
	case category.MasterSheet:
		repo := h.Store.MasterSheetRepository
		staged, err := repo.List(tx, domain.StageStaging, qcode)
		if err != nil {
			return promotion{}, err
		}
		rows := make([]model.MasterSheet, len(staged))
		for i, s := range staged {
			rows[i] = promoteMasterSheetRow(s, syncTimestamp)
		}
		return replaceProduction(tx, qcode, rows, repo.DeleteByQcode, repo.Add)

	case category.EquityHolding:
		repo := h.Store.EquityHoldingRepository
		staged, err := repo.List(tx, domain.StageStaging, qcode)
		if err != nil {
			return promotion{}, err
		}
		for i := range staged {
			staged[i].ID = 0
			staged[i].CreatedAt = syncTimestamp
		}
		return replaceProduction(tx, qcode, staged, repo.DeleteByQcode, repo.Add)

	case category.MutualFundHolding:
		repo := h.Store.MutualFundHoldingRepository
		staged, err := repo.List(tx, domain.StageStaging, qcode)
		if err != nil {
			return promotion{}, err
		}
		for i := range staged {
			staged[i].ID = 0
			staged[i].CreatedAt = syncTimestamp
		}
		return replaceProduction(tx, qcode, staged, repo.DeleteByQcode, repo.Add)
	}

	return promotion{}, desk_errors.ErrUnknownCategory{Category: c.String()}
}

func replaceProduction[T any](
	tx *sql.Tx,
	qcode string,
	rows []T,
	deleteFn func(*sql.Tx, domain.Stage, string) (int64, error),
	addFn func(*sql.Tx, domain.Stage, []T) error,
) (promotion, error) {
	p := promotion{processed: int64(len(rows))}
	if len(rows) == 0 {
		return p, errNothingStaged
	}

	deleted, err := deleteFn(tx, domain.StageProduction, qcode)
	if err != nil {
		return p, err
	}
	p.deleted = deleted

	for start := 0; start < len(rows); start += promoteChunkSize {
		end := start + promoteChunkSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := addFn(tx, domain.StageProduction, rows[start:end]); err != nil {
			return p, err
		}
		p.inserted += int64(end - start)
	}

	return p, nil
}

var hundred = decimal.NewFromInt(100)

// promoteMasterSheetRow recomputes daily_p_l from pnl and portfolio value.
// It is null whenever either input is missing or portfolio value is zero.
func promoteMasterSheetRow(staged model.MasterSheet, syncTimestamp time.Time) model.MasterSheet {
	row := staged
	row.ID = 0
	row.CreatedAt = syncTimestamp
	row.DailyPL = nil
	if row.Pnl != nil && row.PortfolioValue != nil && !row.PortfolioValue.IsZero() {
		d := row.Pnl.Div(*row.PortfolioValue).Mul(hundred)
		row.DailyPL = &d
	}
	return row
}

// clientName is best effort. Failures are logged and yield an empty name.
func (h syncServiceHandler) clientName(ctx context.Context, qcode string, logger logrus.FieldLogger) string {
	name := ""
	err := h.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		account, err := h.AccountRepository.Get(tx, qcode)
		if err != nil {
			return err
		}
		if account != nil {
			name = account.AccountName
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Warn("could not resolve client name")
		return ""
	}
	return name
}

// writeLog appends the audit row in its own transaction, after the
// promotion has committed or rolled back. A failed write is logged only.
func (h syncServiceHandler) writeLog(ctx context.Context, c category.Category, clientName string, syncTimestamp time.Time, result domain.SyncResult, logger logrus.FieldLogger) {
	var errorMessage *string
	if result.Status == model.SyncStatus_Error {
		msg := result.Message
		errorMessage = &msg
	}
	deleted, inserted := int32(0), int32(0)
	if result.RecordsDeleted != nil {
		deleted = int32(*result.RecordsDeleted)
	}
	if result.RecordsInserted != nil {
		inserted = int32(*result.RecordsInserted)
	}
	now := h.now().UTC()

	err := h.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		if c == category.MasterSheet {
			return h.SyncLogRepository.AddMasterSheetLog(tx, model.MasterSheetSyncLogs{
				Qcode:            result.Qcode,
				ClientName:       clientName,
				SyncStatus:       result.Status,
				RecordsDeleted:   deleted,
				RecordsInserted:  inserted,
				RecordsProcessed: int32(result.RecordsProcessed),
				ErrorMessage:     errorMessage,
				SyncTimestamp:    syncTimestamp,
				CreatedAt:        now,
			})
		}
		return h.SyncLogRepository.AddHoldingLog(tx, model.HoldingSyncLogs{
			Qcode:            result.Qcode,
			ClientName:       clientName,
			SyncType:         c.Config().HoldingSyncType,
			SyncStatus:       result.Status,
			RecordsDeleted:   deleted,
			RecordsInserted:  inserted,
			RecordsProcessed: int32(result.RecordsProcessed),
			ErrorMessage:     errorMessage,
			SyncTimestamp:    syncTimestamp,
			CreatedAt:        now,
		})
	})
	if err != nil {
		logger.WithError(err).Error("failed to write sync log")
	}
}
