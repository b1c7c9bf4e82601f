package leads

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
	"github.com/m04kA/SMC-TourCatalog/internal/service/catalog"
	"github.com/m04kA/SMC-TourCatalog/pkg/ptr"
)

// Service сервис приема заявок с форм сайта (бронирование, расчет, контакты, гиды)
type Service struct {
	leadRepo     LeadRepository
	tours        TourLookup
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
	newReference func() string
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	leadRepo LeadRepository,
	tours TourLookup,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		leadRepo:     leadRepo,
		tours:        tours,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		newReference: uuid.NewString,
	}
}

// Submit валидирует и сохраняет заявку
// Если каталог еще не загружен, существование тура не проверяется: заявка важнее
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResponse, error) {
	normalizeRequest(req)

	s.logger.Info("Submit: received lead kind=%s, tour=%d", req.Kind, ptr.Value(req.TourID))

	// 1. Валидация полей формы
	if err := validateRequest(req, s.timeProvider.Now()); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем тур по каталогу
	if req.TourID != nil {
		if err := s.checkTour(ctx, *req.TourID, req.GroupSize); err != nil {
			return nil, err
		}
	}

	// 3. Сохраняем заявку
	lead := &domain.Lead{
		Reference:  s.newReference(),
		Kind:       domain.LeadKind(req.Kind),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		TourID:     req.TourID,
		TravelDate: req.TravelDate,
		GroupSize:  req.GroupSize,
		Message:    req.Message,
	}

	saved, err := s.leadRepo.Create(ctx, lead)
	if err != nil {
		s.logger.Error("Submit: failed to save lead kind=%s: %v", req.Kind, err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncLead(string(saved.Kind))
	s.logger.Info("Submit: lead saved id=%d, reference=%s, kind=%s", saved.ID, saved.Reference, saved.Kind)

	return &SubmitResponse{
		Reference: saved.Reference,
		Kind:      saved.Kind,
		CreatedAt: saved.CreatedAt,
	}, nil
}

// checkTour проверяет, что тур есть в каталоге и подходит для группы
func (s *Service) checkTour(ctx context.Context, tourID int64, groupSize *int) error {
	tour, err := s.tours.GetByID(ctx, tourID)
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrCatalogNotLoaded):
		s.logger.Warn("Submit: catalog not loaded, skipping tour check for tour=%d", tourID)
		return nil
	case errors.Is(err, catalog.ErrTourNotFound):
		s.logger.Warn("Submit: tour id=%d not found", tourID)
		return ErrTourNotFound
	default:
		s.logger.Error("Submit: failed to get tour id=%d: %v", tourID, err)
		return fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}

	if groupSize != nil && *groupSize > tour.MaxGroupSize {
		s.logger.Warn("Submit: group size %d exceeds tour id=%d maximum %d", *groupSize, tourID, tour.MaxGroupSize)
		return fmt.Errorf("%w: maximum is %d", ErrGroupTooLarge, tour.MaxGroupSize)
	}

	return nil
}
