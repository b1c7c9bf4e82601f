package filter_tours

import "github.com/m04kA/SMC-TourCatalog/internal/domain"

// Request сырые значения фильтров из UI (query параметры)
type Request struct {
	Category   string // Категория, точное совпадение
	Duration   string // Диапазон длительности, например "8-14" или "15+"
	Price      string // Диапазон цены, например "0-4000"
	GroupSize  string // Размер группы: туры с maxGroupSize <= значения
	Difficulty string // Уровень сложности
	MinRating  string // Минимальный рейтинг
	Search     string // Поисковая строка
	Sort       string // Порядок сортировки (опционально)
	Seq        string // Номер запроса клиента, возвращается без изменений
}

// Response результат фильтрации каталога
type Response struct {
	Tours    []*domain.Tour    // Подходящие туры
	Total    int               // Общее количество туров в каталоге
	Criteria domain.TourFilter // Примененные критерии
	Warnings []Warning         // Проигнорированные значения фильтров
	Seq      string
}

// Warning предупреждение о значении фильтра, которое не удалось применить
type Warning struct {
	Field   string
	Value   string
	Message string
}

const (
	msgNotANumber        = "value is not a number, filter ignored"
	msgMustBePositive    = "value must be positive, filter ignored"
	msgInvalidLowerBound = "lower bound is not a number, treated as unbounded"
	msgInvalidUpperBound = "upper bound is not a number, treated as unbounded"
	msgEmptyRange        = "lower bound exceeds upper bound, no tours can match"
	msgUnknownDifficulty = "unknown difficulty level"
	msgRatingOutOfRange  = "rating must be between 0 and 5, filter ignored"
	msgUnknownSort       = "unknown sort order, catalog order kept"
)

func newWarning(field, value, message string) Warning {
	return Warning{Field: field, Value: value, Message: message}
}
