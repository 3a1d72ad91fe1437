package store

import (
	"database/sql"

	"github.com/MKhiriev/trade-ledger-pro/internal/logger"
	"github.com/MKhiriev/trade-ledger-pro/migrations"
)

// Dialect names the SQL flavour a DB connection speaks. Repositories use it
// only where PostgreSQL and SQLite syntax diverge (e.g. upserts).
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            Dialect
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}
