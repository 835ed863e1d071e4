package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/carga/internal/database/common"
)

const testSchema = `
CREATE TABLE Direcciones (
    CodigoPostal INTEGER NOT NULL,
    Calle VARCHAR(100) NOT NULL,
    Numero INTEGER NOT NULL,
    PRIMARY KEY (CodigoPostal, Calle, Numero)
);
CREATE TABLE Empleadores (
    CUIT CHAR(11) NOT NULL PRIMARY KEY,
    RazonSocial VARCHAR(100) NOT NULL,
    CodigoPostal INTEGER NOT NULL,
    Calle VARCHAR(100) NOT NULL,
    Numero INTEGER NOT NULL,
    FOREIGN KEY (CodigoPostal, Calle, Numero) REFERENCES Direcciones (CodigoPostal, Calle, Numero)
);
`

func connect(t *testing.T) *Adapter {
	t.Helper()
	ctx := context.Background()

	a := New()
	require.NoError(t, a.Connect(ctx, "sqlite://"+filepath.Join(t.TempDir(), "carga.db")))
	t.Cleanup(func() { a.Close() })
	require.NoError(t, a.Ping(ctx))
	require.NoError(t, a.CreateMigrationsTable(ctx))
	require.NoError(t, a.ExecuteMigration(ctx, "0001_test.sql", "abc123", testSchema))
	return a
}

func TestMigrationBookkeeping(t *testing.T) {
	a := connect(t)

	applied, err := a.GetAppliedMigrations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"0001_test.sql": "abc123"}, applied)
}

func TestInsertAndCount(t *testing.T) {
	ctx := context.Background()
	a := connect(t)

	cols := []string{"CodigoPostal", "Calle", "Numero"}
	require.NoError(t, a.Insert(ctx, "Direcciones", cols, []any{3500, "Av. Alberdi", 120}))
	require.NoError(t, a.Insert(ctx, "Direcciones", cols, []any{3500, "Av. Alberdi", 121}))

	count, err := a.Count(ctx, "Direcciones")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestInsertRejections(t *testing.T) {
	ctx := context.Background()
	a := connect(t)

	cols := []string{"CodigoPostal", "Calle", "Numero"}
	require.NoError(t, a.Insert(ctx, "Direcciones", cols, []any{3500, "Av. Alberdi", 120}))

	err := a.Insert(ctx, "Direcciones", cols, []any{3500, "Av. Alberdi", 120})
	rej, ok := common.AsRejection(err)
	require.True(t, ok, "expected a rejection, got %v", err)
	assert.Equal(t, common.RejectDuplicate, rej.Kind)

	err = a.Insert(ctx, "Empleadores",
		[]string{"CUIT", "RazonSocial", "CodigoPostal", "Calle", "Numero"},
		[]any{"20123456788", "Acme SRL", 9999, "Inexistente", 1})
	rej, ok = common.AsRejection(err)
	require.True(t, ok, "expected a rejection, got %v", err)
	assert.Equal(t, common.RejectForeignKey, rej.Kind)
}

func TestInsertIntoMissingTableIsFatal(t *testing.T) {
	a := connect(t)

	err := a.Insert(context.Background(), "NoExiste", []string{"A"}, []any{1})
	require.Error(t, err)
	_, ok := common.AsRejection(err)
	assert.False(t, ok)
}

func TestDSNFromURL(t *testing.T) {
	assert.Equal(t, "./carga.db?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", dsnFromURL("sqlite://./carga.db"))
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on&_busy_timeout=5000", dsnFromURL("file::memory:?cache=shared"))
	assert.Equal(t, "x.db?_foreign_keys=off&_busy_timeout=5000&_journal_mode=WAL", dsnFromURL("x.db?_foreign_keys=off"))
}
