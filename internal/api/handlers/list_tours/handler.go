package list_tours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourCatalog/internal/api/handlers"
	filterTours "github.com/m04kA/SMC-TourCatalog/internal/usecase/filter_tours"
)

type Handler struct {
	useCase FilterToursUseCase
	logger  Logger
}

func NewHandler(useCase FilterToursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours
// Query params (все опциональны): category, duration, price, groupSize, difficulty, minRating, search, sort, seq
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq := ToUseCaseRequest(r.URL.Query())

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, filterTours.ErrCatalogUnavailable):
			h.logger.Warn("GET /tours - Catalog is not loaded yet")
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /tours - Failed to filter tours: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tours - Tours filtered successfully: count=%d, total=%d, warnings=%d",
		response.Count, response.Total, len(response.Warnings))
	handlers.RespondJSON(w, http.StatusOK, response)
}
