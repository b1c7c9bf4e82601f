package filter_tours

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TourCatalog/internal/service/catalog"
)

// UseCase use case поиска и фильтрации каталога туров
type UseCase struct {
	catalog CatalogProvider
	metrics MetricsRecorder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogProvider CatalogProvider,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog: catalogProvider,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет use case фильтрации каталога
// Некорректные значения фильтров не приводят к ошибке, а возвращаются в Warnings
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Получаем текущий снапшот каталога
	tours, err := uc.catalog.Tours(ctx)
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogNotLoaded) {
			uc.logger.Warn("FilterTours: catalog is not loaded yet")
			return nil, ErrCatalogUnavailable
		}
		uc.logger.Error("FilterTours: failed to get catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get catalog: %v", ErrInternal, err)
	}

	// 2. Разбираем критерии
	criteria, warnings := parseCriteria(req)

	order := strings.TrimSpace(req.Sort)
	if order != "" && !isKnownSort(order) {
		warnings = append(warnings, newWarning(FieldSort, order, msgUnknownSort))
		order = ""
	}

	for _, w := range warnings {
		uc.logger.Warn("FilterTours: field=%s value=%q: %s", w.Field, w.Value, w.Message)
	}

	// 3. Фильтруем и при необходимости сортируем копию результата
	result := Filter(tours, criteria)
	if order != "" {
		sortTours(result, order)
	}

	uc.metrics.ObserveFilterResult(len(result))
	uc.logger.Info("FilterTours: active_criteria=%d, matched=%d of %d, sort=%q",
		criteria.ActiveCount(), len(result), len(tours), order)

	return &Response{
		Tours:    result,
		Total:    len(tours),
		Criteria: criteria,
		Warnings: warnings,
		Seq:      req.Seq,
	}, nil
}
