package list_categories

import "github.com/m04kA/SMC-TourCatalog/internal/domain"

// NavigationResponse HTTP response model навигации по каталогу
type NavigationResponse struct {
	Categories   []Category `json:"categories"`
	Difficulties []string   `json:"difficulties"`
}

// Category элемент навигации по категориям
type Category struct {
	Name      string  `json:"name"`
	TourCount int     `json:"tourCount"`
	MinPrice  float64 `json:"minPrice"`
}

// FromDomain конвертирует сводку категорий в HTTP response
func FromDomain(summaries []domain.CategorySummary) *NavigationResponse {
	categories := make([]Category, len(summaries))
	for i, s := range summaries {
		categories[i] = Category{
			Name:      s.Name,
			TourCount: s.TourCount,
			MinPrice:  s.MinPrice,
		}
	}

	difficulties := make([]string, len(domain.Difficulties))
	for i, d := range domain.Difficulties {
		difficulties[i] = string(d)
	}

	return &NavigationResponse{
		Categories:   categories,
		Difficulties: difficulties,
	}
}
