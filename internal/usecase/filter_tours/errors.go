package filter_tours

import "errors"

var (
	// ErrCatalogUnavailable возвращается, когда снапшот каталога еще не загружен
	ErrCatalogUnavailable = errors.New("catalog is not loaded yet")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
