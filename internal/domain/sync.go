package domain

import (
	"pmsdesk/internal/db/models/postgres/public/model"
	"time"
)

type SyncResult struct {
	Qcode            string
	Status           model.SyncStatus
	Message          string
	RecordsDeleted   *int64
	RecordsInserted  *int64
	RecordsProcessed int64
}

type SyncSummary struct {
	Total      int
	Successful int
	Failed     int
	Skipped    int
}

type SyncOutcome struct {
	SyncTimestamp time.Time
	Results       []SyncResult
	Summary       SyncSummary
}

func (o *SyncOutcome) Add(r SyncResult) {
	o.Results = append(o.Results, r)
	o.Summary.Total++
	switch r.Status {
	case model.SyncStatus_Success:
		o.Summary.Successful++
	case model.SyncStatus_Error:
		o.Summary.Failed++
	case model.SyncStatus_Skipped:
		o.Summary.Skipped++
	}
}

// SyncLog is a row from either sync log table. SyncType is only set for
// holdings logs.
type SyncLog struct {
	Qcode            string
	ClientName       string
	SyncType         *string
	Status           model.SyncStatus
	RecordsDeleted   int64
	RecordsInserted  int64
	RecordsProcessed int64
	ErrorMessage     *string
	SyncTimestamp    time.Time
	CreatedAt        time.Time
}

type SyncHistory struct {
	Logs          []SyncLog
	LatestByQcode []SyncLog
	// counts per status over the last 24 hours
	StatusCounts map[model.SyncStatus]int
}
