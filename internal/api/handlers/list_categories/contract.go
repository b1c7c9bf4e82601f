package list_categories

import (
	"context"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
)

type CatalogService interface {
	Categories(ctx context.Context) ([]domain.CategorySummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
