package leads

import (
	"time"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
)

// SubmitRequest заявка с формы сайта
type SubmitRequest struct {
	Kind       string
	Name       string
	Email      string
	Phone      *string
	TourID     *int64
	TravelDate *time.Time
	GroupSize  *int
	Message    *string
}

// SubmitResponse результат приема заявки
type SubmitResponse struct {
	Reference string
	Kind      domain.LeadKind
	CreatedAt time.Time
}
