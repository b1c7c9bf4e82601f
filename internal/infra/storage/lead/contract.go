package lead

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс выполнения запросов
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
