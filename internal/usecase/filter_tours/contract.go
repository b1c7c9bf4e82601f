package filter_tours

import (
	"context"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
)

// CatalogProvider источник снапшота каталога туров
type CatalogProvider interface {
	Tours(ctx context.Context) ([]*domain.Tour, error)
}

// MetricsRecorder интерфейс для записи метрик фильтрации
type MetricsRecorder interface {
	ObserveFilterResult(matched int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
