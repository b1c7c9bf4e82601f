package submit_lead

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourCatalog/internal/api/handlers"
	"github.com/m04kA/SMC-TourCatalog/internal/service/leads"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTravelDate  = "некорректный формат даты поездки, ожидается YYYY-MM-DD"
	msgInvalidKind        = "неизвестный тип формы"
	msgInvalidInput       = "некорректные данные формы"
	msgTourRequired       = "для бронирования необходимо выбрать тур"
	msgTourNotFound       = "тур не найден"
	msgTravelDateInPast   = "дата поездки не может быть в прошлом"
	msgGroupTooLarge      = "размер группы превышает максимальный для тура"
)

type Handler struct {
	service LeadService
	logger  Logger
}

func NewHandler(service LeadService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/leads
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitLeadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /leads - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /leads - Invalid travel date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTravelDate)
		return
	}

	result, err := h.service.Submit(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrInvalidKind):
			h.logger.Warn("POST /leads - Unknown kind: kind=%q", req.Kind)
			handlers.RespondBadRequest(w, msgInvalidKind)

		case errors.Is(err, leads.ErrInvalidInput):
			h.logger.Warn("POST /leads - Invalid input: kind=%q, error=%v", req.Kind, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, leads.ErrTourRequired):
			h.logger.Warn("POST /leads - Tour required: kind=%q", req.Kind)
			handlers.RespondBadRequest(w, msgTourRequired)

		case errors.Is(err, leads.ErrTourNotFound):
			h.logger.Warn("POST /leads - Tour not found: kind=%q", req.Kind)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, leads.ErrInvalidTravelDate):
			h.logger.Warn("POST /leads - Travel date in the past: kind=%q", req.Kind)
			handlers.RespondBadRequest(w, msgTravelDateInPast)

		case errors.Is(err, leads.ErrGroupTooLarge):
			h.logger.Warn("POST /leads - Group too large: kind=%q, error=%v", req.Kind, err)
			handlers.RespondBadRequest(w, msgGroupTooLarge)

		default:
			h.logger.Error("POST /leads - Failed to submit lead: kind=%q, error=%v", req.Kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /leads - Lead submitted successfully: reference=%s, kind=%s", result.Reference, result.Kind)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
