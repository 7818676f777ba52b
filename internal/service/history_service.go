package service

import (
	"context"
	"database/sql"
	"fmt"
	"pmsdesk/internal/category"
	"pmsdesk/internal/db/models/postgres/public/model"
	db "pmsdesk/internal/db/query"
	"pmsdesk/internal/domain"
	"pmsdesk/internal/repository"
	"pmsdesk/internal/util"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
	statusWindow        = 24 * time.Hour
)

type DeleteRangeInput struct {
	Category  category.Category
	Stage     domain.Stage
	Qcode     string
	StartDate string
	EndDate   string
}

// HistoryService reads the sync audit trail and handles manual deletes of
// date ranges.
type HistoryService interface {
	History(ctx context.Context, c category.Category, qcode *string, limit int) (*domain.SyncHistory, error)
	DeleteRange(ctx context.Context, input DeleteRangeInput) (int64, error)
}

func NewHistoryService(
	txRunner db.TxRunner,
	accountRepository repository.AccountRepository,
	masterSheetRepository repository.MasterSheetRepository,
	equityHoldingRepository repository.EquityHoldingRepository,
	mutualFundHoldingRepository repository.MutualFundHoldingRepository,
	syncLogRepository repository.SyncLogRepository,
	defaultLimit int,
	logger logrus.FieldLogger,
) HistoryService {
	if defaultLimit <= 0 {
		defaultLimit = defaultHistoryLimit
	}
	return historyServiceHandler{
		TxRunner:          txRunner,
		AccountRepository: accountRepository,
		Store: categoryStore{
			MasterSheetRepository:       masterSheetRepository,
			EquityHoldingRepository:     equityHoldingRepository,
			MutualFundHoldingRepository: mutualFundHoldingRepository,
		},
		SyncLogRepository: syncLogRepository,
		DefaultLimit:      defaultLimit,
		Logger:            logger,
		now:               time.Now,
	}
}

type historyServiceHandler struct {
	TxRunner          db.TxRunner
	AccountRepository repository.AccountRepository
	Store             categoryStore
	SyncLogRepository repository.SyncLogRepository
	DefaultLimit      int
	Logger            logrus.FieldLogger

	now func() time.Time
}

func (h historyServiceHandler) History(ctx context.Context, c category.Category, qcode *string, limit int) (*domain.SyncHistory, error) {
	if limit <= 0 {
		limit = h.DefaultLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	since := h.now().UTC().Add(-statusWindow)

	out := &domain.SyncHistory{
		StatusCounts: map[model.SyncStatus]int{
			model.SyncStatus_Success: 0,
			model.SyncStatus_Error:   0,
			model.SyncStatus_Skipped: 0,
		},
	}

	err := h.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		var logs, latest, recent []domain.SyncLog

		if c == category.MasterSheet {
			page, err := h.SyncLogRepository.ListMasterSheetLogs(tx, repository.SyncLogFilter{Qcode: qcode, Limit: limit})
			if err != nil {
				return err
			}
			latestRows, err := h.SyncLogRepository.LatestMasterSheetLogs(tx)
			if err != nil {
				return err
			}
			recentRows, err := h.SyncLogRepository.ListMasterSheetLogs(tx, repository.SyncLogFilter{Qcode: qcode, Since: &since})
			if err != nil {
				return err
			}
			logs, latest, recent = masterSheetLogs(page), masterSheetLogs(latestRows), masterSheetLogs(recentRows)
		} else {
			syncType := c.Config().HoldingSyncType
			page, err := h.SyncLogRepository.ListHoldingLogs(tx, syncType, repository.SyncLogFilter{Qcode: qcode, Limit: limit})
			if err != nil {
				return err
			}
			latestRows, err := h.SyncLogRepository.LatestHoldingLogs(tx, syncType)
			if err != nil {
				return err
			}
			recentRows, err := h.SyncLogRepository.ListHoldingLogs(tx, syncType, repository.SyncLogFilter{Qcode: qcode, Since: &since})
			if err != nil {
				return err
			}
			logs, latest, recent = holdingLogs(page), holdingLogs(latestRows), holdingLogs(recentRows)
		}

		out.Logs = logs
		out.LatestByQcode = latestPerQcode(latest, qcode)
		for _, l := range recent {
			out.StatusCounts[l.Status]++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s sync history: %w", c, err)
	}

	return out, nil
}

// latestPerQcode keeps the first row seen for each qcode. Two logs of one
// qcode can share a sync timestamp when a qcode is repeated in one call.
func latestPerQcode(logs []domain.SyncLog, qcode *string) []domain.SyncLog {
	seen := util.NewSet()
	out := []domain.SyncLog{}
	for _, l := range logs {
		if qcode != nil && l.Qcode != *qcode {
			continue
		}
		if seen.Contains(l.Qcode) {
			continue
		}
		seen.Add(l.Qcode)
		out = append(out, l)
	}
	return out
}

func (h historyServiceHandler) DeleteRange(ctx context.Context, in DeleteRangeInput) (int64, error) {
	dates, err := parseRange(in.StartDate, in.EndDate)
	if err != nil {
		return 0, err
	}
	if err := ensureAccount(ctx, h.TxRunner, h.AccountRepository, in.Qcode); err != nil {
		return 0, err
	}

	var deleted int64
	err = h.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		n, err := h.Store.deleteBetween(tx, in.Category, in.Stage, in.Qcode, dates)
		deleted = n
		return err
	})
	if err != nil {
		return 0, err
	}

	h.Logger.WithFields(logrus.Fields{
		"category": in.Category.String(),
		"stage":    string(in.Stage),
		"qcode":    in.Qcode,
		"deleted":  deleted,
	}).Info("deleted records in range")

	return deleted, nil
}

func masterSheetLogs(rows []model.MasterSheetSyncLogs) []domain.SyncLog {
	out := make([]domain.SyncLog, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.SyncLog{
			Qcode:            r.Qcode,
			ClientName:       r.ClientName,
			Status:           r.SyncStatus,
			RecordsDeleted:   int64(r.RecordsDeleted),
			RecordsInserted:  int64(r.RecordsInserted),
			RecordsProcessed: int64(r.RecordsProcessed),
			ErrorMessage:     r.ErrorMessage,
			SyncTimestamp:    r.SyncTimestamp,
			CreatedAt:        r.CreatedAt,
		})
	}
	return out
}

func holdingLogs(rows []model.HoldingSyncLogs) []domain.SyncLog {
	out := make([]domain.SyncLog, 0, len(rows))
	for _, r := range rows {
		syncType := r.SyncType.String()
		out = append(out, domain.SyncLog{
			Qcode:            r.Qcode,
			ClientName:       r.ClientName,
			SyncType:         &syncType,
			Status:           r.SyncStatus,
			RecordsDeleted:   int64(r.RecordsDeleted),
			RecordsInserted:  int64(r.RecordsInserted),
			RecordsProcessed: int64(r.RecordsProcessed),
			ErrorMessage:     r.ErrorMessage,
			SyncTimestamp:    r.SyncTimestamp,
			CreatedAt:        r.CreatedAt,
		})
	}
	return out
}
