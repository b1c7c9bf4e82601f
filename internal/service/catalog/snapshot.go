package catalog

import (
	"time"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
)

// Snapshot неизменяемый снимок каталога туров
// После публикации снапшот только читается, поэтому доступен конкурентно без блокировок
type Snapshot struct {
	tours    []*domain.Tour
	byID     map[int64]*domain.Tour
	loadedAt time.Time
}

// newSnapshot строит снапшот, пропуская nil записи
func newSnapshot(source []*domain.Tour, loadedAt time.Time) *Snapshot {
	tours := make([]*domain.Tour, 0, len(source))
	byID := make(map[int64]*domain.Tour, len(source))
	for _, t := range source {
		if t == nil {
			continue
		}
		tours = append(tours, t)

		// При дублировании ID выигрывает первая запись каталога
		if _, exists := byID[t.ID]; !exists {
			byID[t.ID] = t
		}
	}

	return &Snapshot{
		tours:    tours,
		byID:     byID,
		loadedAt: loadedAt,
	}
}

// Tours возвращает туры снапшота в порядке каталога
func (s *Snapshot) Tours() []*domain.Tour {
	return s.tours
}

// LoadedAt время загрузки снапшота
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Categories возвращает категории в порядке первого появления в каталоге
func (s *Snapshot) Categories() []domain.CategorySummary {
	summaries := make([]domain.CategorySummary, 0)
	index := make(map[string]int)

	for _, t := range s.tours {
		if t.Category == "" {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			index[t.Category] = len(summaries)
			summaries = append(summaries, domain.CategorySummary{
				Name:      t.Category,
				TourCount: 1,
				MinPrice:  t.Price,
			})
			continue
		}
		summaries[i].TourCount++
		if t.Price < summaries[i].MinPrice {
			summaries[i].MinPrice = t.Price
		}
	}

	return summaries
}
