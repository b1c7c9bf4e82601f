package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках ничего не делают
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	catalogTours        prometheus.Gauge
	catalogRefreshTotal *prometheus.CounterVec
	filterResultSize    prometheus.Histogram
	leadsTotal          *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса в собственном registry
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		catalogTours: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "catalog_tours",
			Help:        "Number of tours in the current catalog snapshot",
			ConstLabels: constLabels,
		}),
		catalogRefreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "catalog_refresh_total",
			Help:        "Catalog snapshot refresh attempts",
			ConstLabels: constLabels,
		}, []string{"result"}),
		filterResultSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "catalog_filter_result_size",
			Help:        "Number of tours returned by a catalog filter request",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 20, 50, 100, 200},
		}),
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "leads_submitted_total",
			Help:        "Lead form submissions by kind",
			ConstLabels: constLabels,
		}, []string{"kind"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.catalogTours,
		m.catalogRefreshTotal,
		m.filterResultSize,
		m.leadsTotal,
	)

	return m
}

// Handler возвращает http.Handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterDBStats добавляет метрики connection pool базы данных
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) {
	if m == nil {
		return
	}
	m.registry.MustRegister(collectors.NewDBStatsCollector(db, dbName))
}

// ObserveHTTPRequest записывает метрики обработанного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// SetCatalogSize обновляет размер текущего снапшота каталога
func (m *Metrics) SetCatalogSize(n int) {
	if m == nil {
		return
	}
	m.catalogTours.Set(float64(n))
}

// IncCatalogRefresh учитывает попытку обновления каталога
func (m *Metrics) IncCatalogRefresh(success bool) {
	if m == nil {
		return
	}
	result := "success"
	if !success {
		result = "error"
	}
	m.catalogRefreshTotal.WithLabelValues(result).Inc()
}

// ObserveFilterResult записывает размер результата фильтрации
func (m *Metrics) ObserveFilterResult(matched int) {
	if m == nil {
		return
	}
	m.filterResultSize.Observe(float64(matched))
}

// IncLead учитывает принятую заявку
func (m *Metrics) IncLead(kind string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(kind).Inc()
}
