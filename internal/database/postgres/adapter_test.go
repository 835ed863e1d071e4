package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/carga/internal/database/common"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code string
		kind common.RejectKind
	}{
		{"23505", common.RejectDuplicate},
		{"23503", common.RejectForeignKey},
		{"23502", common.RejectMalformed},
		{"22001", common.RejectMalformed},
		{"22007", common.RejectMalformed},
		{"40001", common.RejectOther},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := classify("Empleadores", &pgconn.PgError{Code: tt.code, Message: "rejected"})
			rej, ok := common.AsRejection(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, rej.Kind)
		})
	}
}

func TestClassifyFatal(t *testing.T) {
	for _, err := range []error{
		&pgconn.PgError{Code: "42P01", Message: `relation "empleadores" does not exist`},
		&pgconn.PgError{Code: "08006", Message: "connection failure"},
		errors.New("conn closed"),
	} {
		_, ok := common.AsRejection(classify("Empleadores", err))
		assert.False(t, ok, err.Error())
	}
}

func TestInsertStatementUsesDollarPlaceholders(t *testing.T) {
	a := New()
	query, args, err := a.qb.Insert("Idiomas").Columns("Nombre").Values("Guaraní").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO Idiomas (Nombre) VALUES ($1)", query)
	assert.Equal(t, []any{"Guaraní"}, args)
}
