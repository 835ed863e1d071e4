package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/carga/internal/config"
	"github.com/Rana718/carga/internal/database"
	"github.com/Rana718/carga/internal/dataset"
	"github.com/Rana718/carga/internal/migration"
	"github.com/Rana718/carga/internal/seeder"
)

type Database struct {
	Name string
	URL  string
}

// databases lists the servers to load into. MySQL and PostgreSQL only run when
// their URL is exported, e.g. by a docker-compose job.
func databases(t *testing.T) []Database {
	dbs := []Database{
		{Name: "sqlite", URL: "sqlite://" + filepath.Join(t.TempDir(), "carga.db")},
	}
	if url := os.Getenv("CARGA_TEST_MYSQL_URL"); url != "" {
		dbs = append(dbs, Database{Name: "mysql", URL: url})
	}
	if url := os.Getenv("CARGA_TEST_POSTGRES_URL"); url != "" {
		dbs = append(dbs, Database{Name: "postgresql", URL: url})
	}
	return dbs
}

func TestAllDatabasesParallel(t *testing.T) {
	for _, db := range databases(t) {
		t.Run(db.Name, func(t *testing.T) {
			t.Parallel()
			testDatabase(t, db)
		})
	}
}

func testDatabase(t *testing.T, db Database) {
	ctx := context.Background()

	adapter, err := database.NewAdapter(config.DetectProvider(db.URL))
	require.NoError(t, err)
	require.NoError(t, adapter.Connect(ctx, db.URL))
	t.Cleanup(func() { adapter.Close() })
	require.NoError(t, adapter.Ping(ctx))

	t.Run("01_Migrate", func(t *testing.T) {
		testMigrate(t, adapter)
	})

	t.Run("02_Load", func(t *testing.T) {
		testLoad(t, adapter, 1)
	})

	t.Run("03_Reload", func(t *testing.T) {
		testLoad(t, adapter, 2)
	})
}

func testMigrate(t *testing.T, adapter database.DatabaseAdapter) {
	ctx := context.Background()

	manager, err := migration.NewManager("")
	require.NoError(t, err)

	_, err = manager.Apply(ctx, adapter)
	require.NoError(t, err)

	again, err := manager.Apply(ctx, adapter)
	require.NoError(t, err)
	assert.Zero(t, again, "second apply should find nothing pending")
}

// testLoad runs a small load and checks that every succeeded insert is a row.
func testLoad(t *testing.T, adapter database.DatabaseAdapter, seed int64) {
	ctx := context.Background()

	data, err := dataset.Load("")
	require.NoError(t, err)

	plan := seeder.DefaultPlan()
	before := map[string]int{}
	for _, name := range plan.Names() {
		n, err := adapter.Count(ctx, name)
		require.NoError(t, err, name)
		before[name] = n
	}

	s, err := seeder.NewSeeder(adapter, data, seeder.SeedConfig{Count: 10, Seed: seed, Workers: 2})
	require.NoError(t, err)

	summary, err := s.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, summary.Total, summary.Succeeded+summary.Rejected)
	assert.NotZero(t, summary.Succeeded)

	for _, sc := range summary.Stages {
		n, err := adapter.Count(ctx, sc.Stage)
		require.NoError(t, err, sc.Stage)
		assert.EqualValues(t, sc.Succeeded, n-before[sc.Stage], sc.Stage)
	}
}
