package get_tour

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourCatalog/internal/api/handlers"
	listTours "github.com/m04kA/SMC-TourCatalog/internal/api/handlers/list_tours"
	"github.com/m04kA/SMC-TourCatalog/internal/service/catalog"
)

const (
	msgInvalidTourID = "некорректный ID тура"
	msgTourNotFound  = "тур не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours/{tourId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourIDStr := mux.Vars(r)["tourId"]
	tourID, err := strconv.ParseInt(tourIDStr, 10, 64)
	if err != nil || tourID <= 0 {
		h.logger.Warn("GET /tours/{id} - Invalid tour ID: %q", tourIDStr)
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	tour, err := h.service.GetByID(r.Context(), tourID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrTourNotFound):
			h.logger.Warn("GET /tours/{id} - Tour not found: tour_id=%d", tourID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, catalog.ErrCatalogNotLoaded):
			h.logger.Warn("GET /tours/{id} - Catalog is not loaded yet")
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /tours/{id} - Failed to get tour: tour_id=%d, error=%v", tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tours/{id} - Tour retrieved successfully: tour_id=%d", tourID)
	handlers.RespondJSON(w, http.StatusOK, listTours.FromDomainTour(tour))
}
