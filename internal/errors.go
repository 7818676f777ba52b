package desk_errors

import (
	"fmt"
	"strings"
)

type ErrInvalidInput struct {
	Message string
}

func (e ErrInvalidInput) Error() string {
	return e.Message
}

type ErrInvalidFile struct {
	FileName string
	Reason   string
}

func (e ErrInvalidFile) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid file %q: %s", e.FileName, e.Reason)
	}
	return fmt.Sprintf("invalid file %q", e.FileName)
}

type ErrEmptyFile struct{}

func (e ErrEmptyFile) Error() string {
	return "CSV file must have a header row and at least one data row"
}

type ErrMissingColumns struct {
	Missing     []string
	ColumnNames []string
}

func (e ErrMissingColumns) Error() string {
	return "Missing required columns: " + strings.Join(e.Missing, ", ")
}

// ErrInvalidAccount is returned when a qcode does not match an account.
type ErrInvalidAccount struct {
	Qcode string
}

func (e ErrInvalidAccount) Error() string {
	return fmt.Sprintf("no account found for qcode %s", e.Qcode)
}

type ErrUnknownCategory struct {
	Category string
}

func (e ErrUnknownCategory) Error() string {
	return fmt.Sprintf("unknown data category %q", e.Category)
}

type ErrNoData struct {
	AccountCode string
}

func (e ErrNoData) Error() string {
	return fmt.Sprintf("No data found for account code: %s", e.AccountCode)
}

type FormatError struct {
	Value    string
	Expected string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("invalid date %q, expected format %s", e.Value, e.Expected)
}
