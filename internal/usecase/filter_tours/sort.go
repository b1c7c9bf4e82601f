package filter_tours

import (
	"sort"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
)

// isKnownSort проверяет, что порядок сортировки поддерживается
func isKnownSort(order string) bool {
	switch order {
	case domain.SortPriceAsc, domain.SortPriceDesc, domain.SortDurationAsc, domain.SortRatingDesc:
		return true
	default:
		return false
	}
}

// sortTours сортирует результат фильтрации на месте
// Сортировка стабильная: туры с равными ключами сохраняют порядок каталога.
// При сортировке по рейтингу туры без рейтинга идут в конце.
func sortTours(tours []*domain.Tour, order string) {
	var less func(a, b *domain.Tour) bool

	switch order {
	case domain.SortPriceAsc:
		less = func(a, b *domain.Tour) bool { return a.Price < b.Price }
	case domain.SortPriceDesc:
		less = func(a, b *domain.Tour) bool { return a.Price > b.Price }
	case domain.SortDurationAsc:
		less = func(a, b *domain.Tour) bool { return a.DurationDays < b.DurationDays }
	case domain.SortRatingDesc:
		less = func(a, b *domain.Tour) bool {
			if !a.HasRating() || !b.HasRating() {
				return a.HasRating() && !b.HasRating()
			}
			return *a.Rating > *b.Rating
		}
	default:
		return
	}

	sort.SliceStable(tours, func(i, j int) bool {
		return less(tours[i], tours[j])
	})
}
