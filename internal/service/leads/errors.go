package leads

import "errors"

var (
	// ErrInvalidKind возвращается при неизвестном типе формы
	ErrInvalidKind = errors.New("unknown lead kind")

	// ErrInvalidInput возвращается при некорректных полях формы
	ErrInvalidInput = errors.New("invalid input data")

	// ErrTourRequired возвращается, когда форма бронирования не содержит тур
	ErrTourRequired = errors.New("tour is required for this form")

	// ErrTourNotFound возвращается, когда указанный тур отсутствует в каталоге
	ErrTourNotFound = errors.New("tour not found")

	// ErrInvalidTravelDate возвращается, когда дата поездки в прошлом
	ErrInvalidTravelDate = errors.New("travel date is in the past")

	// ErrGroupTooLarge возвращается, когда группа больше максимальной для тура
	ErrGroupTooLarge = errors.New("group size exceeds tour maximum")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
