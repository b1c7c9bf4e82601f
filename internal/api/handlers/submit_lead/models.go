package submit_lead

import (
	"time"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
	"github.com/m04kA/SMC-TourCatalog/internal/service/leads"
)

// SubmitLeadRequest HTTP request model
type SubmitLeadRequest struct {
	Kind       string  `json:"kind"` // booking, quote, contact, guide
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	TourID     *int64  `json:"tourId,omitempty"`
	TravelDate *string `json:"travelDate,omitempty"` // "2026-11-01"
	GroupSize  *int    `json:"groupSize,omitempty"`
	Message    *string `json:"message,omitempty"`
}

// SubmitLeadResponse HTTP response model
type SubmitLeadResponse struct {
	Reference string `json:"reference"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты)
func (r *SubmitLeadRequest) ToServiceRequest() (*leads.SubmitRequest, error) {
	var travelDate *time.Time
	if r.TravelDate != nil && *r.TravelDate != "" {
		date, err := time.Parse(domain.DateFormat, *r.TravelDate)
		if err != nil {
			return nil, err
		}
		travelDate = &date
	}

	return &leads.SubmitRequest{
		Kind:       r.Kind,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		TourID:     r.TourID,
		TravelDate: travelDate,
		GroupSize:  r.GroupSize,
		Message:    r.Message,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *leads.SubmitResponse) *SubmitLeadResponse {
	return &SubmitLeadResponse{
		Reference: resp.Reference,
		Kind:      string(resp.Kind),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
