package repository

import (
	"database/sql"
	"fmt"
	"pmsdesk/internal/db/models/postgres/public/model"
	. "pmsdesk/internal/db/models/postgres/public/table"
	"time"

	"github.com/go-jet/jet/v2/postgres"
)

type SyncLogFilter struct {
	Qcode *string
	Since *time.Time
	// zero means no limit
	Limit int
}

// SyncLogRepository only appends and reads. Log rows are never updated.
type SyncLogRepository interface {
	AddMasterSheetLog(tx *sql.Tx, log model.MasterSheetSyncLogs) error
	AddHoldingLog(tx *sql.Tx, log model.HoldingSyncLogs) error
	ListMasterSheetLogs(tx *sql.Tx, filter SyncLogFilter) ([]model.MasterSheetSyncLogs, error)
	ListHoldingLogs(tx *sql.Tx, syncType model.HoldingSyncType, filter SyncLogFilter) ([]model.HoldingSyncLogs, error)
	// Latest* return the most recent log row of every qcode.
	LatestMasterSheetLogs(tx *sql.Tx) ([]model.MasterSheetSyncLogs, error)
	LatestHoldingLogs(tx *sql.Tx, syncType model.HoldingSyncType) ([]model.HoldingSyncLogs, error)
}

type syncLogRepositoryHandler struct{}

func NewSyncLogRepository() SyncLogRepository {
	return syncLogRepositoryHandler{}
}

func (h syncLogRepositoryHandler) AddMasterSheetLog(tx *sql.Tx, log model.MasterSheetSyncLogs) error {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	query := MasterSheetSyncLogs.INSERT(MasterSheetSyncLogs.MutableColumns).MODEL(log)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert master sheet sync log for %s: %w", log.Qcode, err)
	}
	return nil
}

func (h syncLogRepositoryHandler) AddHoldingLog(tx *sql.Tx, log model.HoldingSyncLogs) error {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	query := HoldingSyncLogs.INSERT(HoldingSyncLogs.MutableColumns).MODEL(log)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert %s holding sync log for %s: %w", log.SyncType, log.Qcode, err)
	}
	return nil
}

func (h syncLogRepositoryHandler) ListMasterSheetLogs(tx *sql.Tx, filter SyncLogFilter) ([]model.MasterSheetSyncLogs, error) {
	t := MasterSheetSyncLogs
	condition := postgres.Bool(true)
	if filter.Qcode != nil {
		condition = condition.AND(t.Qcode.EQ(postgres.String(*filter.Qcode)))
	}
	if filter.Since != nil {
		condition = condition.AND(t.SyncTimestamp.GT_EQ(postgres.TimestampzT(*filter.Since)))
	}

	query := t.SELECT(t.AllColumns).
		WHERE(condition).
		ORDER_BY(t.SyncTimestamp.DESC(), t.ID.DESC())
	if filter.Limit > 0 {
		query = query.LIMIT(int64(filter.Limit))
	}

	out := []model.MasterSheetSyncLogs{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list master sheet sync logs: %w", err)
	}
	return out, nil
}

func (h syncLogRepositoryHandler) ListHoldingLogs(tx *sql.Tx, syncType model.HoldingSyncType, filter SyncLogFilter) ([]model.HoldingSyncLogs, error) {
	t := HoldingSyncLogs
	condition := t.SyncType.EQ(postgres.NewEnumValue(syncType.String()))
	if filter.Qcode != nil {
		condition = condition.AND(t.Qcode.EQ(postgres.String(*filter.Qcode)))
	}
	if filter.Since != nil {
		condition = condition.AND(t.SyncTimestamp.GT_EQ(postgres.TimestampzT(*filter.Since)))
	}

	query := t.SELECT(t.AllColumns).
		WHERE(condition).
		ORDER_BY(t.SyncTimestamp.DESC(), t.ID.DESC())
	if filter.Limit > 0 {
		query = query.LIMIT(int64(filter.Limit))
	}

	out := []model.HoldingSyncLogs{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s holding sync logs: %w", syncType, err)
	}
	return out, nil
}

func (h syncLogRepositoryHandler) LatestMasterSheetLogs(tx *sql.Tx) ([]model.MasterSheetSyncLogs, error) {
	t := MasterSheetSyncLogs
	latest := t.SELECT(
		t.Qcode,
		postgres.MAX(t.SyncTimestamp).AS("latest_sync_timestamp"),
	).GROUP_BY(t.Qcode).AsTable("latest")

	latestQcode := t.Qcode.From(latest)
	latestTimestamp := postgres.TimestampzColumn("latest_sync_timestamp").From(latest)

	query := t.INNER_JOIN(
		latest,
		t.Qcode.EQ(latestQcode).AND(t.SyncTimestamp.EQ(latestTimestamp)),
	).SELECT(
		t.AllColumns,
	).ORDER_BY(t.Qcode.ASC(), t.ID.DESC())

	out := []model.MasterSheetSyncLogs{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest master sheet sync logs: %w", err)
	}
	return out, nil
}

func (h syncLogRepositoryHandler) LatestHoldingLogs(tx *sql.Tx, syncType model.HoldingSyncType) ([]model.HoldingSyncLogs, error) {
	t := HoldingSyncLogs
	latest := t.SELECT(
		t.Qcode,
		postgres.MAX(t.SyncTimestamp).AS("latest_sync_timestamp"),
	).WHERE(
		t.SyncType.EQ(postgres.NewEnumValue(syncType.String())),
	).GROUP_BY(t.Qcode).AsTable("latest")

	latestQcode := t.Qcode.From(latest)
	latestTimestamp := postgres.TimestampzColumn("latest_sync_timestamp").From(latest)

	query := t.INNER_JOIN(
		latest,
		t.Qcode.EQ(latestQcode).AND(t.SyncTimestamp.EQ(latestTimestamp)),
	).SELECT(
		t.AllColumns,
	).WHERE(
		t.SyncType.EQ(postgres.NewEnumValue(syncType.String())),
	).ORDER_BY(t.Qcode.ASC(), t.ID.DESC())

	out := []model.HoldingSyncLogs{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest %s holding sync logs: %w", syncType, err)
	}
	return out, nil
}
