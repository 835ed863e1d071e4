package sqlite

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/Rana718/carga/internal/database/common"
)

func classify(table string, err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return fmt.Errorf("insert into %s: %w", table, err)
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return common.Reject(table, common.RejectDuplicate, err)
	case sqlite3.ErrConstraintForeignKey:
		return common.Reject(table, common.RejectForeignKey, err)
	case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
		return common.Reject(table, common.RejectMalformed, err)
	}

	switch sqliteErr.Code {
	case sqlite3.ErrConstraint:
		return common.Reject(table, common.RejectOther, err)
	case sqlite3.ErrMismatch, sqlite3.ErrTooBig, sqlite3.ErrRange:
		return common.Reject(table, common.RejectMalformed, err)
	default:
		return fmt.Errorf("insert into %s: %w", table, err)
	}
}
