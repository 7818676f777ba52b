package domain

import (
	"fmt"
	"time"
)

// Stage selects which table of a category pair an operation targets.
type Stage string

const (
	StageStaging    Stage = "staging"
	StageProduction Stage = "production"
)

func ParseStage(s string) (Stage, error) {
	switch Stage(s) {
	case "", StageStaging:
		return StageStaging, nil
	case StageProduction:
		return StageProduction, nil
	}
	return "", fmt.Errorf("unknown stage %q", s)
}

type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// FailedRow describes one upload row that could not be staged. RowIndex is
// the file line, with the header on line 1.
type FailedRow struct {
	RowIndex int
	Error    string
	Row      map[string]string
}

type StageResult struct {
	Table        string
	TotalRows    int
	InsertedRows int
	SkippedRows  int
	DeletedRows  int64
	FailedCount  int
	// FailedRows is truncated to the configured report limit.
	FailedRows  []FailedRow
	FirstError  *string
	ColumnNames []string
}

func (r StageResult) Message() string {
	if r.FailedCount == 0 {
		return fmt.Sprintf("Successfully uploaded %d rows to %s", r.InsertedRows, r.Table)
	}
	return fmt.Sprintf(
		"Uploaded %d of %d rows to %s; %d rows failed",
		r.InsertedRows,
		r.TotalRows,
		r.Table,
		r.FailedCount,
	)
}
