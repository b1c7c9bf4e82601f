package lead

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
	"github.com/m04kA/SMC-TourCatalog/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const uniqueViolation = "23505"

// Repository репозиторий заявок с форм сайта
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заявку и заполняет ID и CreatedAt
func (r *Repository) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	query, args, err := psqlbuilder.Insert("leads").
		Columns(
			"reference",
			"kind",
			"name",
			"email",
			"phone",
			"tour_id",
			"travel_date",
			"group_size",
			"message",
		).
		Values(
			lead.Reference,
			lead.Kind,
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.TourID,
			lead.TravelDate,
			lead.GroupSize,
			lead.Message,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&lead.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateReference
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	lead.CreatedAt = createdAt.Time

	return lead, nil
}
