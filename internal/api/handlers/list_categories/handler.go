package list_categories

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourCatalog/internal/api/handlers"
	"github.com/m04kA/SMC-TourCatalog/internal/service/catalog"
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

// Handle GET /api/v1/tours/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.Categories(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCatalogNotLoaded):
			h.logger.Warn("GET /tours/categories - Catalog is not loaded yet")
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /tours/categories - Failed to get categories: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tours/categories - Categories retrieved successfully: count=%d", len(summaries))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(summaries))
}
