package list_tours

import (
	"context"

	filterTours "github.com/m04kA/SMC-TourCatalog/internal/usecase/filter_tours"
)

type FilterToursUseCase interface {
	Execute(ctx context.Context, req *filterTours.Request) (*filterTours.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
