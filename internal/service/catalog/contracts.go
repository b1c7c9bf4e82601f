package catalog

import (
	"context"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
)

// TourRepository источник каталога туров
type TourRepository interface {
	GetAll(ctx context.Context) ([]*domain.Tour, error)
}

// MetricsRecorder интерфейс для записи метрик каталога
type MetricsRecorder interface {
	SetCatalogSize(n int)
	IncCatalogRefresh(success bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
