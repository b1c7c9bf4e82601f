package get_tour

import (
	"context"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
)

type CatalogService interface {
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
