package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Rana718/carga/internal/database/common"
)

const migrationsTable = "_carga_migrations"

type Adapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// dsnFromURL strips the sqlite:// scheme and turns on foreign key enforcement,
// which SQLite leaves off by default.
func dsnFromURL(url string) string {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	params := []string{"_foreign_keys=on", "_busy_timeout=5000"}
	if !strings.Contains(dbPath, ":memory:") && !strings.Contains(dbPath, "_journal_mode") {
		params = append(params, "_journal_mode=WAL")
	}

	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	for _, param := range params {
		key := param[:strings.Index(param, "=")]
		if strings.Contains(dbPath, key+"=") {
			continue
		}
		dbPath += sep + param
		sep = "&"
	}
	return dbPath
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("sqlite3", dsnFromURL(url))
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// SQLite serialises writers; one connection avoids SQLITE_BUSY under parallel stages.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	return nil
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Adapter) Insert(ctx context.Context, table string, columns []string, values []any) error {
	query, args, err := s.qb.Insert(table).Columns(columns...).Values(values...).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", table, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return classify(table, err)
	}
	return nil
}

func (s *Adapter) Count(ctx context.Context, table string) (int, error) {
	query, args, err := s.qb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

func (s *Adapter) CreateMigrationsTable(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS ` + migrationsTable + ` (
		name TEXT PRIMARY KEY,
		checksum TEXT NOT NULL,
		applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

func (s *Adapter) GetAppliedMigrations(ctx context.Context) (map[string]string, error) {
	query, args, err := s.qb.Select("name", "checksum").From(migrationsTable).OrderBy("name").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]string)
	for rows.Next() {
		var name, checksum string
		if err := rows.Scan(&name, &checksum); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[name] = checksum
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating migration rows: %w", err)
	}
	return applied, nil
}

func (s *Adapter) ExecuteMigration(ctx context.Context, name, checksum, migrationSQL string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range common.ParseSQLStatements(migrationSQL) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute statement %d of %s: %w", i+1, name, err)
		}
	}

	query, args, err := s.qb.Insert(migrationsTable).Columns("name", "checksum").Values(name, checksum).ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration transaction: %w", err)
	}
	return nil
}
