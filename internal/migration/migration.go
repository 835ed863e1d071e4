package migration

import (
	"context"
	"crypto/sha256"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/Rana718/carga/internal/log"
)

//go:embed migrations/*.sql
var embedded embed.FS

// ErrChecksumMismatch is returned when an applied migration no longer matches its file.
var ErrChecksumMismatch = errors.New("migration checksum mismatch")

// Migration represents a database migration
type Migration struct {
	Name     string
	Content  string
	Checksum string
}

// Store is the slice of a database adapter migrations need.
type Store interface {
	CreateMigrationsTable(ctx context.Context) error
	GetAppliedMigrations(ctx context.Context) (map[string]string, error)
	ExecuteMigration(ctx context.Context, name, checksum, migrationSQL string) error
}

// Manager handles migration operations
type Manager struct {
	fsys fs.FS
}

// NewManager reads migrations from dir, or from the embedded set when dir is empty.
func NewManager(dir string) (*Manager, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open migrations directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("migrations path %s is not a directory", dir)
		}
		return NewManagerFS(os.DirFS(dir)), nil
	}

	sub, err := fs.Sub(embedded, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	return NewManagerFS(sub), nil
}

func NewManagerFS(fsys fs.FS) *Manager {
	return &Manager{fsys: fsys}
}

// GetLocalMigrations returns all .sql files at the root of the migration set, sorted by name.
func (m *Manager) GetLocalMigrations() ([]*Migration, error) {
	names, err := fs.Glob(m.fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	migrations := make([]*Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(m.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}

		migration := &Migration{
			Name:     path.Base(name),
			Content:  string(content),
			Checksum: calculateChecksum(string(content)),
		}
		if err := ValidateMigration(migration); err != nil {
			return nil, err
		}
		migrations = append(migrations, migration)
	}

	return migrations, nil
}

// GetPendingMigrations returns migrations that haven't been applied yet. An
// applied migration whose checksum differs from the local file is an error.
func (m *Manager) GetPendingMigrations(applied map[string]string) ([]*Migration, error) {
	local, err := m.GetLocalMigrations()
	if err != nil {
		return nil, err
	}

	var pending []*Migration
	for _, migration := range local {
		checksum, ok := applied[migration.Name]
		if !ok {
			pending = append(pending, migration)
			continue
		}
		if checksum != migration.Checksum {
			return nil, fmt.Errorf("%w: %s was modified after being applied", ErrChecksumMismatch, migration.Name)
		}
	}

	return pending, nil
}

// Apply runs every pending migration in name order and returns how many ran.
func (m *Manager) Apply(ctx context.Context, store Store) (int, error) {
	if err := store.CreateMigrationsTable(ctx); err != nil {
		return 0, fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := store.GetAppliedMigrations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	pending, err := m.GetPendingMigrations(applied)
	if err != nil {
		return 0, err
	}

	for i, migration := range pending {
		log.Log.WithField("migration", migration.Name).Debug("applying migration")
		if err := store.ExecuteMigration(ctx, migration.Name, migration.Checksum, migration.Content); err != nil {
			return i, fmt.Errorf("failed to apply migration %s: %w", migration.Name, err)
		}
	}

	return len(pending), nil
}

func calculateChecksum(content string) string {
	hash := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x", hash)
}

// ValidateMigration validates a migration file
func ValidateMigration(migration *Migration) error {
	if strings.TrimSpace(migration.Content) == "" {
		return fmt.Errorf("migration %s is empty", migration.Name)
	}

	content := strings.ToLower(migration.Content)
	if strings.Contains(content, "drop database") {
		return fmt.Errorf("migration %s contains dangerous DROP DATABASE statement", migration.Name)
	}

	return nil
}
