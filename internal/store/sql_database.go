package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/asta/blog-keeper/internal/logger"
	"github.com/asta/blog-keeper/migrations"
)

// DB is an open database handle together with everything dialect-specific:
// the squirrel statement builder (placeholder format), the LIKE operator and
// the driver error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	likeOperator       string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, driver string, placeholder sq.PlaceholderFormat, likeOperator string, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		likeOperator:       likeOperator,
		errorClassificator: classificator,
		logger:             log,
	}
}

// Driver returns the database/sql driver name the handle was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations of the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// classify maps a driver error onto the store's classification.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
