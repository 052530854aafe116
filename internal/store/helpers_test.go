package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/asta/blog-keeper/internal/config"
	"github.com/asta/blog-keeper/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

// newMockPostgresDB returns a postgres-flavoured *DB over sqlmock. The mock's
// expectations are verified on cleanup.
func newMockPostgresDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		conn.Close()
	})

	return newDB(conn, config.DriverPostgres, sq.Dollar, "ILIKE", NewPostgresErrorClassifier(), logger.Nop()), mock
}

// newSQLiteFlavouredDB returns a *DB with sqlite settings for query building
// only; it has no connection.
func newSQLiteFlavouredDB() *DB {
	return newDB(nil, config.DriverSQLite, sq.Question, "LIKE", NewSQLiteErrorClassifier(), logger.Nop())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
