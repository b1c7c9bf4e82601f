package lead

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
	"github.com/m04kA/SMC-TourCatalog/pkg/ptr"
)

const insertLeadPattern = `INSERT INTO leads \(reference,kind,name,email,phone,tour_id,travel_date,group_size,message\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9\) RETURNING id, created_at`

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lead := &domain.Lead{
		Reference: "0b7c7f0e-6f55-4a57-9a8b-8c1f5f1a2d11",
		Kind:      domain.LeadKindQuote,
		Name:      "Karma",
		Email:     "karma@example.com",
		TourID:    ptr.Ptr(int64(7)),
		GroupSize: ptr.Ptr(4),
	}

	mock.ExpectQuery(insertLeadPattern).
		WithArgs(lead.Reference, "quote", "Karma", "karma@example.com", nil, int64(7), nil, int64(4), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, createdAt))

	saved, err := NewRepository(db).Create(context.Background(), lead)
	require.NoError(t, err)
	assert.Equal(t, int64(42), saved.ID)
	assert.Equal(t, createdAt, saved.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateReference(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(insertLeadPattern).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	_, err = NewRepository(db).Create(context.Background(), &domain.Lead{
		Reference: "dup",
		Kind:      domain.LeadKindContact,
		Name:      "Dorji",
		Email:     "dorji@example.com",
	})
	assert.ErrorIs(t, err, ErrDuplicateReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(insertLeadPattern).
		WillReturnError(errors.New("connection refused"))

	_, err = NewRepository(db).Create(context.Background(), &domain.Lead{
		Reference: "ref",
		Kind:      domain.LeadKindContact,
		Name:      "Dorji",
		Email:     "dorji@example.com",
	})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
