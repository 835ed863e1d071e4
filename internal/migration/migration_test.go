package migration

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/carga/internal/database/common"
)

type fakeStore struct {
	applied  map[string]string
	executed []string
	failOn   string
}

func (f *fakeStore) CreateMigrationsTable(ctx context.Context) error {
	if f.applied == nil {
		f.applied = map[string]string{}
	}
	return nil
}

func (f *fakeStore) GetAppliedMigrations(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(f.applied))
	for k, v := range f.applied {
		out[k] = v
	}
	return out, nil
}

func (f *fakeStore) ExecuteMigration(ctx context.Context, name, checksum, sql string) error {
	if name == f.failOn {
		return errors.New("syntax error")
	}
	f.executed = append(f.executed, name)
	f.applied[name] = checksum
	return nil
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"0002_idiomas.sql":     {Data: []byte("CREATE TABLE Idiomas (Nombre VARCHAR(50) PRIMARY KEY);")},
		"0001_direcciones.sql": {Data: []byte("CREATE TABLE Direcciones (CodigoPostal INT);")},
		"README.md":            {Data: []byte("not a migration")},
	}
}

func TestGetLocalMigrationsSorted(t *testing.T) {
	migrations, err := NewManagerFS(testFS()).GetLocalMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "0001_direcciones.sql", migrations[0].Name)
	assert.Equal(t, "0002_idiomas.sql", migrations[1].Name)
	assert.Len(t, migrations[0].Checksum, 64)
}

func TestApplyRunsPendingOnce(t *testing.T) {
	ctx := context.Background()
	m := NewManagerFS(testFS())
	store := &fakeStore{}

	n, err := m.Apply(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"0001_direcciones.sql", "0002_idiomas.sql"}, store.executed)

	n, err = m.Apply(ctx, store)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, store.executed, 2)
}

func TestApplyDetectsModifiedMigration(t *testing.T) {
	store := &fakeStore{applied: map[string]string{"0001_direcciones.sql": "stale"}}

	_, err := NewManagerFS(testFS()).Apply(context.Background(), store)
	require.ErrorIs(t, err, ErrChecksumMismatch)
	assert.Empty(t, store.executed)
}

func TestApplyStopsOnFailure(t *testing.T) {
	store := &fakeStore{failOn: "0002_idiomas.sql"}

	n, err := NewManagerFS(testFS()).Apply(context.Background(), store)
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, err.Error(), "0002_idiomas.sql")
}

func TestValidateMigration(t *testing.T) {
	require.Error(t, ValidateMigration(&Migration{Name: "empty.sql", Content: "  \n"}))
	require.Error(t, ValidateMigration(&Migration{Name: "bad.sql", Content: "DROP DATABASE carga;"}))
	require.NoError(t, ValidateMigration(&Migration{Name: "ok.sql", Content: "CREATE TABLE Idiomas (Nombre VARCHAR(50));"}))
}

func TestEmbeddedSchema(t *testing.T) {
	m, err := NewManager("")
	require.NoError(t, err)

	migrations, err := m.GetLocalMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	var creates int
	for _, migration := range migrations {
		for _, stmt := range common.ParseSQLStatements(migration.Content) {
			if len(stmt) >= 12 && stmt[:12] == "CREATE TABLE" {
				creates++
			}
		}
	}
	assert.Equal(t, 37, creates)
}

func TestNewManagerMissingDir(t *testing.T) {
	_, err := NewManager(t.TempDir() + "/missing")
	require.Error(t, err)
}
