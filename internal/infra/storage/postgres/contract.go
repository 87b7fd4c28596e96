package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения SQL запросов (*sql.DB или *sql.Tx)
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
