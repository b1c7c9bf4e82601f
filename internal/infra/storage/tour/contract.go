package tour

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс выполнения запросов на чтение
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}
