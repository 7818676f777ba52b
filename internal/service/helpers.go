package service

import (
	"context"
	"database/sql"
	"fmt"
	desk_errors "pmsdesk/internal"
	db "pmsdesk/internal/db/query"
	"pmsdesk/internal/domain"
	"pmsdesk/internal/normalize"
	"pmsdesk/internal/repository"
)

func ensureAccount(ctx context.Context, txRunner db.TxRunner, accountRepository repository.AccountRepository, qcode string) error {
	found := false
	err := txRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		account, err := accountRepository.Get(tx, qcode)
		if err != nil {
			return err
		}
		found = account != nil
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to look up account %s: %w", qcode, err)
	}
	if !found {
		return desk_errors.ErrInvalidAccount{Qcode: qcode}
	}
	return nil
}

// parseOptionalRange accepts both bounds or neither.
func parseOptionalRange(start, end string) (*domain.DateRange, error) {
	if normalize.IsBlank(start) && normalize.IsBlank(end) {
		return nil, nil
	}
	if normalize.IsBlank(start) || normalize.IsBlank(end) {
		return nil, desk_errors.ErrInvalidInput{Message: "startDate and endDate must be provided together"}
	}
	r, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func parseRange(start, end string) (domain.DateRange, error) {
	s, err := normalize.ParseDate(start, false)
	if err != nil {
		return domain.DateRange{}, desk_errors.ErrInvalidInput{Message: "startDate: " + err.Error()}
	}
	e, err := normalize.ParseDate(end, false)
	if err != nil {
		return domain.DateRange{}, desk_errors.ErrInvalidInput{Message: "endDate: " + err.Error()}
	}
	if s.After(e) {
		return domain.DateRange{}, desk_errors.ErrInvalidInput{Message: "startDate must be on or before endDate"}
	}
	return domain.DateRange{Start: s, End: e}, nil
}
