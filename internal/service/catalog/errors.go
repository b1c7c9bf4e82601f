package catalog

import "errors"

var (
	// ErrCatalogNotLoaded возвращается, пока не загружен ни один снапшот каталога
	ErrCatalogNotLoaded = errors.New("catalog: snapshot not loaded")

	// ErrTourNotFound возвращается, когда тур не найден в снапшоте
	ErrTourNotFound = errors.New("catalog: tour not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
