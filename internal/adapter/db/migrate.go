package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations
var migrationFiles embed.FS

const migrationSuffix = ".up.sql"

type migration struct {
	version string
	file    string
}

// Migrate applies the embedded migrations of the connection's dialect that are
// not yet recorded in schema_migrations, in version order. It returns the
// versions applied by this call.
func Migrate(ctx context.Context, db *sqlx.DB) ([]string, error) {
	d := dialectFor(db.DriverName())

	createTable := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS schema_migrations (version VARCHAR(255) NOT NULL PRIMARY KEY, applied_at %s NOT NULL)",
		d.timestampType,
	)
	if _, err := db.ExecContext(ctx, createTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	pending, err := pendingMigrations(ctx, db, d)
	if err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(pending))
	for _, m := range pending {
		if err := applyMigration(ctx, db, m); err != nil {
			return applied, fmt.Errorf("apply migration %s: %w", m.version, err)
		}
		applied = append(applied, m.version)
	}

	return applied, nil
}

func pendingMigrations(ctx context.Context, db *sqlx.DB, d dialect) ([]migration, error) {
	dir := path.Join("migrations", d.name)
	entries, err := fs.ReadDir(migrationFiles, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations for %s: %w", d.name, err)
	}

	var done []string
	if err := db.SelectContext(ctx, &done, "SELECT version FROM schema_migrations"); err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	seen := make(map[string]struct{}, len(done))
	for _, version := range done {
		seen[version] = struct{}{}
	}

	var pending []migration
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, migrationSuffix) {
			continue
		}
		version := strings.TrimSuffix(name, migrationSuffix)
		if _, ok := seen[version]; ok {
			continue
		}
		pending = append(pending, migration{version: version, file: path.Join(dir, name)})
	}

	sort.Slice(pending, func(i, j int) bool { return pending[i].version < pending[j].version })

	return pending, nil
}

func applyMigration(ctx context.Context, db *sqlx.DB, m migration) error {
	body, err := migrationFiles.ReadFile(m.file)
	if err != nil {
		return err
	}

	// MySQL commits DDL implicitly, so the transaction only guarantees the
	// version row is written after every statement succeeded.
	return withTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, stmt := range splitStatements(string(body)) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		_, err := tx.ExecContext(
			ctx,
			tx.Rebind("INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)"),
			m.version,
			time.Now().UTC(),
		)
		return err
	})
}

func splitStatements(body string) []string {
	parts := strings.Split(body, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		if stmt := strings.TrimSpace(part); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}
