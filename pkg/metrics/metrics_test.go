package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest(http.MethodGet, "/api/v1/tours", http.StatusOK, time.Millisecond)
		m.SetCatalogSize(10)
		m.IncCatalogRefresh(true)
		m.ObserveFilterResult(3)
		m.IncLead("quote")
		m.RegisterDBStats(nil, "tours")
	})
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_Collect(t *testing.T) {
	m := New("tour-catalog")

	m.IncCatalogRefresh(true)
	m.IncCatalogRefresh(false)
	m.IncLead("booking")
	m.IncLead("booking")
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/tours", http.StatusOK, 10*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `catalog_refresh_total{result="error",service="tour-catalog"} 1`)
	assert.Contains(t, body, `leads_submitted_total{kind="booking",service="tour-catalog"} 2`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/v1/tours",service="tour-catalog",status="200"} 1`)
}

func TestMetrics_Handler(t *testing.T) {
	m := New("tour-catalog")
	m.SetCatalogSize(4)

	assert.Contains(t, scrape(t, m), `catalog_tours{service="tour-catalog"} 4`)
}
