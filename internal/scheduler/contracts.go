package scheduler

import "context"

// CatalogRefresher обновляет снапшот каталога
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
