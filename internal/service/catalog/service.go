package catalog

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
)

// Service сервис снапшота каталога туров
// Каталог загружается один раз и периодически заменяется целиком.
// Неудачное обновление оставляет предыдущий снапшот.
type Service struct {
	repo     TourRepository
	metrics  MetricsRecorder
	logger   Logger
	snapshot atomic.Pointer[Snapshot]
	now      func() time.Time
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo TourRepository, metrics MetricsRecorder, logger Logger) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Refresh загружает каталог из репозитория и атомарно публикует новый снапшот
func (s *Service) Refresh(ctx context.Context) error {
	tours, err := s.repo.GetAll(ctx)
	if err != nil {
		s.metrics.IncCatalogRefresh(false)
		s.logger.Error("Refresh: failed to load catalog: %v", err)
		return fmt.Errorf("%w: Refresh - repository error: %v", ErrInternal, err)
	}

	snap := newSnapshot(tours, s.now())
	s.snapshot.Store(snap)

	s.metrics.IncCatalogRefresh(true)
	s.metrics.SetCatalogSize(len(snap.tours))
	s.logger.Info("Refresh: catalog snapshot published, tours=%d", len(snap.tours))

	return nil
}

// Snapshot возвращает текущий снапшот каталога
func (s *Service) Snapshot() (*Snapshot, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, ErrCatalogNotLoaded
	}
	return snap, nil
}

// Tours возвращает туры текущего снапшота в порядке каталога
func (s *Service) Tours(_ context.Context) ([]*domain.Tour, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Tours(), nil
}

// GetByID получает тур по ID
func (s *Service) GetByID(_ context.Context, id int64) (*domain.Tour, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: tour id must be positive", ErrInvalidInput)
	}

	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	tour, ok := snap.byID[id]
	if !ok {
		s.logger.Warn("GetByID: tour id=%d not found", id)
		return nil, ErrTourNotFound
	}

	return tour, nil
}

// Categories возвращает навигацию по категориям текущего снапшота
func (s *Service) Categories(_ context.Context) ([]domain.CategorySummary, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Categories(), nil
}
