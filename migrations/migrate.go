package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations embedded in this package.
// dialect is a goose dialect name ("postgres" or "sqlite3").
//
// TODO: the schema files use BIGSERIAL, which SQLite does not autoincrement;
// sqlite3 deployments need a dialect-specific migration set.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
