package leads

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
)

// LeadRepository интерфейс репозитория заявок
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
}

// TourLookup интерфейс поиска тура в каталоге
type TourLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
}

// MetricsRecorder интерфейс для записи метрик заявок
type MetricsRecorder interface {
	IncLead(kind string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
