package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/shared-note/internal/config"
	"github.com/MKhiriev/shared-note/internal/logger"
	"github.com/MKhiriev/shared-note/migrations"
)

// Dialect names understood by [migrations.Migrate].
const (
	dialectPostgres = "pgx"
	dialectSQLite   = "sqlite3"
)

// DB is an open database connection together with the settings that depend
// on its driver.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB connects to the database named by cfg.DSN: a postgres:// or
// postgresql:// URL selects PostgreSQL, anything else is a SQLite file.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	switch {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case isPostgresDSN(dsn):
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify reports whether err may go away on retry. Drivers without a
// classifier never retry.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
