package database

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordbook/schemas"
)

// Migrate applies the embedded schema files for the connection's driver in name order.
// The files only use IF NOT EXISTS statements, so running it again is a no-op.
func Migrate(ctx context.Context, db *sqlx.DB) ([]string, error) {
	return migrateFS(ctx, db, schemas.Migrations)
}

func migrateFS(ctx context.Context, db *sqlx.DB, fsys fs.FS) ([]string, error) {
	dir := path.Join("migrations", db.DriverName())
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations for %s: %w", db.DriverName(), err)
	}

	var applied []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		for _, stmt := range splitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return applied, fmt.Errorf("apply migration %s: %w", entry.Name(), err)
			}
		}
		applied = append(applied, entry.Name())
	}
	return applied, nil
}

func splitStatements(content string) []string {
	var statements []string
	for _, part := range strings.Split(content, ";") {
		stmt := strings.TrimSpace(part)
		if stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}
