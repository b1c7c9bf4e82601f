package tour

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
	"github.com/m04kA/SMC-TourCatalog/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TourCatalog/pkg/ptr"
)

// Repository репозиторий каталога туров (источник снапшота)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория туров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все опубликованные туры в порядке отображения каталога
// Хайлайты подгружаются вторым запросом и раскладываются по турам с сохранением позиции
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Tour, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"category",
		"duration_days",
		"price",
		"max_group_size",
		"difficulty",
		"rating",
	).
		From("tours").
		Where(squirrel.Eq{"is_published": true}).
		OrderBy("sort_order ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tours := make([]*domain.Tour, 0)

	for rows.Next() {
		var t domain.Tour
		var difficulty sql.NullString
		var rating sql.NullFloat64

		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Description,
			&t.Category,
			&t.DurationDays,
			&t.Price,
			&t.MaxGroupSize,
			&difficulty,
			&rating,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan tour: %v", ErrScanRow, err)
		}

		if difficulty.Valid && difficulty.String != "" {
			t.Difficulty = ptr.Ptr(domain.Difficulty(difficulty.String))
		}
		if rating.Valid {
			t.Rating = ptr.Ptr(rating.Float64)
		}
		t.Highlights = []string{}

		tours = append(tours, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - iterate tours: %v", ErrExecQuery, err)
	}

	if len(tours) == 0 {
		return tours, nil
	}

	if err := r.loadHighlights(ctx, tours); err != nil {
		return nil, err
	}

	return tours, nil
}

// loadHighlights заполняет хайлайты для загруженных туров
func (r *Repository) loadHighlights(ctx context.Context, tours []*domain.Tour) error {
	ids := make([]int64, 0, len(tours))
	byID := make(map[int64]*domain.Tour, len(tours))
	for _, t := range tours {
		ids = append(ids, t.ID)
		byID[t.ID] = t
	}

	query, args, err := psqlbuilder.Select("tour_id", "text").
		From("tour_highlights").
		Where(squirrel.Eq{"tour_id": ids}).
		OrderBy("tour_id ASC", "position ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadHighlights - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadHighlights - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var tourID int64
		var text string
		if err := rows.Scan(&tourID, &text); err != nil {
			return fmt.Errorf("%w: loadHighlights - scan highlight: %v", ErrScanRow, err)
		}
		if t, ok := byID[tourID]; ok {
			t.Highlights = append(t.Highlights, text)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadHighlights - iterate highlights: %v", ErrExecQuery, err)
	}

	return nil
}
