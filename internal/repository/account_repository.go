package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"pmsdesk/internal/db/models/postgres/public/model"
	. "pmsdesk/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// AccountRepository is read-only. Accounts are created and edited elsewhere.
type AccountRepository interface {
	Get(tx *sql.Tx, qcode string) (*model.Accounts, error)
}

type accountRepositoryHandler struct{}

func NewAccountRepository() AccountRepository {
	return accountRepositoryHandler{}
}

// Get returns nil, nil when no account has the qcode.
func (h accountRepositoryHandler) Get(tx *sql.Tx, qcode string) (*model.Accounts, error) {
	query := Accounts.SELECT(Accounts.AllColumns).
		WHERE(Accounts.Qcode.EQ(postgres.String(qcode)))

	var out model.Accounts
	err := query.Query(tx, &out)
	if err != nil && (errors.Is(err, qrm.ErrNoRows) || errors.Is(err, sql.ErrNoRows)) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", qcode, err)
	}

	return &out, nil
}
