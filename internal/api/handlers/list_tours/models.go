package list_tours

import (
	"net/url"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
	filterTours "github.com/m04kA/SMC-TourCatalog/internal/usecase/filter_tours"
)

// ToursResponse HTTP response model
type ToursResponse struct {
	Tours    []TourResponse `json:"tours"`
	Count    int            `json:"count"` // Количество найденных туров
	Total    int            `json:"total"` // Количество туров в каталоге
	Warnings []Warning      `json:"warnings"`
	Seq      string         `json:"seq,omitempty"`
}

// TourResponse модель тура в ответе
type TourResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Duration     int      `json:"duration"`
	Price        float64  `json:"price"`
	MaxGroupSize int      `json:"maxGroupSize"`
	Difficulty   *string  `json:"difficulty,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	Highlights   []string `json:"highlights"`
}

// Warning предупреждение о проигнорированном значении фильтра
type Warning struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(query url.Values) *filterTours.Request {
	return &filterTours.Request{
		Category:   query.Get("category"),
		Duration:   query.Get("duration"),
		Price:      query.Get("price"),
		GroupSize:  query.Get("groupSize"),
		Difficulty: query.Get("difficulty"),
		MinRating:  query.Get("minRating"),
		Search:     query.Get("search"),
		Sort:       query.Get("sort"),
		Seq:        query.Get("seq"),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *filterTours.Response) *ToursResponse {
	tours := make([]TourResponse, len(resp.Tours))
	for i, t := range resp.Tours {
		tours[i] = FromDomainTour(t)
	}

	warnings := make([]Warning, len(resp.Warnings))
	for i, w := range resp.Warnings {
		warnings[i] = Warning{Field: w.Field, Value: w.Value, Message: w.Message}
	}

	return &ToursResponse{
		Tours:    tours,
		Count:    len(tours),
		Total:    resp.Total,
		Warnings: warnings,
		Seq:      resp.Seq,
	}
}

// FromDomainTour конвертирует доменный тур в модель ответа
func FromDomainTour(t *domain.Tour) TourResponse {
	var difficulty *string
	if t.Difficulty != nil {
		d := string(*t.Difficulty)
		difficulty = &d
	}

	highlights := t.Highlights
	if highlights == nil {
		highlights = []string{}
	}

	return TourResponse{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		Category:     t.Category,
		Duration:     t.DurationDays,
		Price:        t.Price,
		MaxGroupSize: t.MaxGroupSize,
		Difficulty:   difficulty,
		Rating:       t.Rating,
		Highlights:   highlights,
	}
}
