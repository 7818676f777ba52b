package repository

import (
	"database/sql"
	"fmt"

	"github.com/go-jet/jet/v2/postgres"
)

func execDelete(tx *sql.Tx, query postgres.DeleteStatement, tableName, qcode string) (int64, error) {
	result, err := query.Exec(tx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s rows for %s: %w", tableName, qcode, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted %s rows: %w", tableName, err)
	}
	return n, nil
}
