package filter_tours

import (
	"strings"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
)

// Filter возвращает туры, удовлетворяющие всем активным критериям
// Входной срез не изменяется, результат - новый срез с сохранением исходного порядка.
// Пустые критерии возвращают все туры.
func Filter(tours []*domain.Tour, criteria domain.TourFilter) []*domain.Tour {
	result := make([]*domain.Tour, 0, len(tours))

	// Приводим поисковую строку к нижнему регистру один раз на вызов
	search := ""
	if criteria.HasSearchTerm() {
		search = strings.ToLower(criteria.SearchTerm)
	}

	for _, t := range tours {
		if t == nil {
			continue
		}
		if matches(t, criteria, search) {
			result = append(result, t)
		}
	}

	return result
}

// Clear эквивалентен Filter с пустыми критериями
func Clear(tours []*domain.Tour) []*domain.Tour {
	return Filter(tours, domain.TourFilter{})
}

// matches проверяет тур по каждому активному критерию (логическое И)
func matches(t *domain.Tour, c domain.TourFilter, search string) bool {
	if c.HasCategory() && t.Category != *c.Category {
		return false
	}

	if c.HasDurationRange() && !c.DurationRange.Contains(float64(t.DurationDays)) {
		return false
	}

	if c.HasPriceRange() && !c.PriceRange.Contains(t.Price) {
		return false
	}

	if c.HasMaxGroupSize() && !t.SuitableForGroup(*c.MaxGroupSize) {
		return false
	}

	if c.HasDifficulty() {
		if !t.HasDifficulty() || *t.Difficulty != *c.Difficulty {
			return false
		}
	}

	if c.HasMinRating() {
		if !t.HasRating() || *t.Rating < *c.MinRating {
			return false
		}
	}

	if search != "" {
		if !strings.Contains(strings.ToLower(t.Name), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			return false
		}
	}

	return true
}
