package list_tours

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
	"github.com/m04kA/SMC-TourCatalog/internal/service/catalog"
	filterTours "github.com/m04kA/SMC-TourCatalog/internal/usecase/filter_tours"
	"github.com/m04kA/SMC-TourCatalog/pkg/logger"
	"github.com/m04kA/SMC-TourCatalog/pkg/ptr"
)

type stubCatalog struct {
	tours []*domain.Tour
	err   error
}

func (s *stubCatalog) Tours(_ context.Context) ([]*domain.Tour, error) {
	return s.tours, s.err
}

type nopMetrics struct{}

func (nopMetrics) ObserveFilterResult(int) {}

func newHandler(c filterTours.CatalogProvider) *Handler {
	uc := filterTours.NewUseCase(c, nopMetrics{}, logger.NewNop())
	return NewHandler(uc, logger.NewNop())
}

func catalogTours() []*domain.Tour {
	return []*domain.Tour{
		{
			ID: 1, Name: "Paro Valley", Description: "Hike to Tiger's Nest", Category: "Cultural",
			DurationDays: 7, Price: 2500, MaxGroupSize: 10,
			Difficulty: ptr.Ptr(domain.DifficultyModerate), Rating: ptr.Ptr(4.8),
			Highlights: []string{"Taktsang"},
		},
		{
			ID: 2, Name: "Snowman Trek", Description: "Remote high passes", Category: "Adventure",
			DurationDays: 12, Price: 4500, MaxGroupSize: 6,
		},
	}
}

func doRequest(t *testing.T, h *Handler, target string) (*httptest.ResponseRecorder, ToursResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body ToursResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestHandler_NoFiltersReturnsCatalog(t *testing.T) {
	rec, body := doRequest(t, newHandler(&stubCatalog{tours: catalogTours()}), "/api/v1/tours")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, int64(1), body.Tours[0].ID)
	assert.Equal(t, int64(2), body.Tours[1].ID)
	assert.NotNil(t, body.Warnings)
	assert.Empty(t, body.Warnings)

	require.NotNil(t, body.Tours[0].Difficulty)
	assert.Equal(t, "Moderate", *body.Tours[0].Difficulty)
	assert.Nil(t, body.Tours[1].Rating)
	assert.Equal(t, []string{}, body.Tours[1].Highlights)
}

func TestHandler_Filters(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantIDs []int64
	}{
		{name: "category", target: "/api/v1/tours?category=Cultural", wantIDs: []int64{1}},
		{name: "price range", target: "/api/v1/tours?price=0-4000", wantIDs: []int64{1}},
		{name: "open duration", target: "/api/v1/tours?duration=8%2B", wantIDs: []int64{2}},
		{name: "group size", target: "/api/v1/tours?category=Adventure&groupSize=5", wantIDs: []int64{}},
		{name: "search", target: "/api/v1/tours?search=tiger", wantIDs: []int64{1}},
		{name: "sort", target: "/api/v1/tours?sort=price_desc", wantIDs: []int64{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doRequest(t, newHandler(&stubCatalog{tours: catalogTours()}), tt.target)
			require.Equal(t, http.StatusOK, rec.Code)

			got := make([]int64, 0, len(body.Tours))
			for _, tour := range body.Tours {
				got = append(got, tour.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestHandler_MalformedRangeReturnsWarning(t *testing.T) {
	rec, body := doRequest(t, newHandler(&stubCatalog{tours: catalogTours()}), "/api/v1/tours?price=abc-3000&seq=42")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", body.Seq)
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Warnings, 1)
	assert.Equal(t, "price", body.Warnings[0].Field)
	assert.Equal(t, "abc-3000", body.Warnings[0].Value)
}

func TestHandler_CatalogNotLoaded(t *testing.T) {
	h := newHandler(&stubCatalog{err: catalog.ErrCatalogNotLoaded})
	rec, _ := doRequest(t, h, "/api/v1/tours")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_InternalError(t *testing.T) {
	h := newHandler(&stubCatalog{err: errors.New("boom")})
	rec, _ := doRequest(t, h, "/api/v1/tours")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
