package mysql

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/Rana718/carga/internal/database/common"
)

var rejectCodes = map[uint16]common.RejectKind{
	1022: common.RejectDuplicate, // ER_DUP_KEY
	1062: common.RejectDuplicate, // ER_DUP_ENTRY
	1586: common.RejectDuplicate, // ER_DUP_ENTRY_WITH_KEY_NAME
	1216: common.RejectForeignKey,
	1217: common.RejectForeignKey,
	1451: common.RejectForeignKey, // ER_ROW_IS_REFERENCED_2
	1452: common.RejectForeignKey, // ER_NO_REFERENCED_ROW_2
	1048: common.RejectMalformed,  // ER_BAD_NULL_ERROR
	1264: common.RejectMalformed,  // ER_WARN_DATA_OUT_OF_RANGE
	1265: common.RejectMalformed,  // WARN_DATA_TRUNCATED
	1292: common.RejectMalformed,  // ER_TRUNCATED_WRONG_VALUE
	1366: common.RejectMalformed,  // ER_TRUNCATED_WRONG_VALUE_FOR_FIELD
	1406: common.RejectMalformed,  // ER_DATA_TOO_LONG
}

// Server errors that mean the schema or the session is unusable.
var fatalCodes = map[uint16]struct{}{
	1045: {}, // ER_ACCESS_DENIED_ERROR
	1049: {}, // ER_BAD_DB_ERROR
	1054: {}, // ER_BAD_FIELD_ERROR
	1142: {}, // ER_TABLEACCESS_DENIED_ERROR
	1146: {}, // ER_NO_SUCH_TABLE
}

func classify(table string, err error) error {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	if _, fatal := fatalCodes[myErr.Number]; fatal {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	kind, ok := rejectCodes[myErr.Number]
	if !ok {
		kind = common.RejectOther
	}
	return common.Reject(table, kind, err)
}
