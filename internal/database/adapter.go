package database

import (
	"context"
)

// MigrationsTable tracks applied schema migrations in every provider.
const MigrationsTable = "_carga_migrations"

type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// Insert writes a single row. Store-side refusals come back as
	// *common.RejectError; any other error is fatal for the run.
	Insert(ctx context.Context, table string, columns []string, values []any) error
	Count(ctx context.Context, table string) (int, error)

	// Migration table management
	CreateMigrationsTable(ctx context.Context) error
	GetAppliedMigrations(ctx context.Context) (map[string]string, error)
	ExecuteMigration(ctx context.Context, name, checksum, migrationSQL string) error
}
