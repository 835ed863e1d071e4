package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Rana718/carga/internal/database/common"
)

// classify maps SQLSTATE codes onto rejection kinds. Class 23 is integrity
// violations and class 22 data exceptions; class 42 (undefined table or
// column) and connection classes stay fatal.
func classify(table string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("insert into %s: %w", table, err)
	}

	switch {
	case pgErr.Code == "23505":
		return common.Reject(table, common.RejectDuplicate, err)
	case pgErr.Code == "23503":
		return common.Reject(table, common.RejectForeignKey, err)
	case strings.HasPrefix(pgErr.Code, "22"), pgErr.Code == "23502", pgErr.Code == "23514":
		return common.Reject(table, common.RejectMalformed, err)
	case strings.HasPrefix(pgErr.Code, "23"), strings.HasPrefix(pgErr.Code, "40"):
		return common.Reject(table, common.RejectOther, err)
	default:
		return fmt.Errorf("insert into %s: %w", table, err)
	}
}
