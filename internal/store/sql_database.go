package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-qes-vault/internal/config"
	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/migrations"
)

// DB wraps a *sql.DB together with its dialect, the matching driver error
// classifier and a squirrel statement builder using the dialect's
// placeholder format.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	builder            sq.StatementBuilderType
	logger             *logger.Logger
}

// NewDB opens the database named by cfg.Driver and verifies the connection.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg.DSN, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case config.DriverPostgres:
		db.errorClassificator = NewPostgresErrorClassifier()
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	default:
		db.errorClassificator = NewSQLiteErrorClassifier()
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}

	return db
}

// Dialect returns the driver name the connection was opened with.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
