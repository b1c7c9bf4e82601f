package leads

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
)

// normalizeRequest убирает пробелы по краям и превращает пустые опциональные поля в nil
func normalizeRequest(req *SubmitRequest) {
	req.Kind = strings.ToLower(strings.TrimSpace(req.Kind))
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = trimOptional(req.Phone)
	req.Message = trimOptional(req.Message)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// validateRequest валидирует поля формы, не обращаясь к каталогу
func validateRequest(req *SubmitRequest, now time.Time) error {
	kind := domain.LeadKind(req.Kind)
	if !kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, req.Kind)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Name) > domain.MaxLeadNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(req.Email) > domain.MaxLeadEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if req.Phone != nil && len(*req.Phone) > domain.MaxLeadPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if req.Message != nil && utf8.RuneCountInString(*req.Message) > domain.MaxLeadMessage {
		return fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}
	if kind == domain.LeadKindContact && req.Message == nil {
		return fmt.Errorf("%w: message is required for contact form", ErrInvalidInput)
	}

	if kind.RequiresTour() && req.TourID == nil {
		return ErrTourRequired
	}
	if req.TourID != nil && *req.TourID <= 0 {
		return fmt.Errorf("%w: tourId must be positive", ErrInvalidInput)
	}

	if req.GroupSize != nil && (*req.GroupSize <= 0 || *req.GroupSize > domain.MaxLeadGroupSize) {
		return fmt.Errorf("%w: groupSize must be between 1 and %d", ErrInvalidInput, domain.MaxLeadGroupSize)
	}

	if req.TravelDate != nil && isDateInPast(*req.TravelDate, now) {
		return ErrInvalidTravelDate
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
