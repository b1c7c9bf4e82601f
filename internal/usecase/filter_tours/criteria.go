package filter_tours

import (
	"math"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-TourCatalog/internal/domain"
)

// Поля запроса, по которым возвращаются предупреждения валидации
const (
	FieldCategory   = "category"
	FieldDuration   = "duration"
	FieldPrice      = "price"
	FieldGroupSize  = "groupSize"
	FieldDifficulty = "difficulty"
	FieldMinRating  = "minRating"
	FieldSearch     = "search"
	FieldSort       = "sort"
)

// parseCriteria собирает доменный фильтр из сырых значений запроса
// Некорректные значения не прерывают фильтрацию: соответствующее ограничение снимается,
// а причина возвращается в списке предупреждений
func parseCriteria(req *Request) (domain.TourFilter, []Warning) {
	var (
		criteria domain.TourFilter
		warnings []Warning
	)

	if category := strings.TrimSpace(req.Category); category != "" {
		criteria.Category = &category
	}

	var rangeWarnings []Warning
	criteria.DurationRange, rangeWarnings = ParseRange(FieldDuration, req.Duration)
	warnings = append(warnings, rangeWarnings...)

	criteria.PriceRange, rangeWarnings = ParseRange(FieldPrice, req.Price)
	warnings = append(warnings, rangeWarnings...)

	if raw := strings.TrimSpace(req.GroupSize); raw != "" {
		size, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			warnings = append(warnings, newWarning(FieldGroupSize, raw, msgNotANumber))
		case size <= 0:
			warnings = append(warnings, newWarning(FieldGroupSize, raw, msgMustBePositive))
		default:
			criteria.MaxGroupSize = &size
		}
	}

	if raw := strings.TrimSpace(req.Difficulty); raw != "" {
		d := domain.Difficulty(raw)
		if !d.IsValid() {
			// Неизвестное значение не ошибка: фильтр просто вернет пустой результат
			warnings = append(warnings, newWarning(FieldDifficulty, raw, msgUnknownDifficulty))
		}
		criteria.Difficulty = &d
	}

	if raw := strings.TrimSpace(req.MinRating); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil:
			warnings = append(warnings, newWarning(FieldMinRating, raw, msgNotANumber))
		case rating < domain.MinRating || rating > domain.MaxRating:
			warnings = append(warnings, newWarning(FieldMinRating, raw, msgRatingOutOfRange))
		default:
			criteria.MinRating = &rating
		}
	}

	// Строка поиска применяется целиком: длинная строка просто находит меньше туров
	criteria.SearchTerm = req.Search

	return criteria, warnings
}

// ParseRange разбирает строку диапазона из UI
//
// Поддерживаемые форматы:
//   - "8-14"  - от 8 до 14 включительно
//   - "15+"   - от 15, без верхней границы
//   - "-4000" - до 4000, без нижней границы
//   - "7"     - ровно 7
//
// Нечисловая граница не ломает фильтр: она считается неограниченной, а в ответ
// добавляется предупреждение. Если ни одна граница не разобрана, возвращается nil.
func ParseRange(field, raw string) (*domain.Range, []Warning) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var (
		minStr, maxStr string
		exact          bool
	)

	switch {
	case strings.HasSuffix(raw, "+"):
		minStr = strings.TrimSuffix(raw, "+")
	case strings.Contains(raw, "-"):
		parts := strings.SplitN(raw, "-", 2)
		minStr, maxStr = parts[0], parts[1]
	default:
		minStr = raw
		exact = true
	}

	var warnings []Warning
	r := &domain.Range{}

	if v, ok := parseBound(minStr); ok {
		r.Min = &v
	} else if strings.TrimSpace(minStr) != "" || exact {
		warnings = append(warnings, newWarning(field, raw, msgInvalidLowerBound))
	}

	if exact {
		r.Max = r.Min
	} else if v, ok := parseBound(maxStr); ok {
		r.Max = &v
	} else if strings.TrimSpace(maxStr) != "" {
		warnings = append(warnings, newWarning(field, raw, msgInvalidUpperBound))
	}

	if r.IsUnbounded() {
		return nil, warnings
	}

	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		warnings = append(warnings, newWarning(field, raw, msgEmptyRange))
	}

	return r, warnings
}

// parseBound разбирает одну границу диапазона, допускает пробелы и разделители тысяч
func parseBound(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
