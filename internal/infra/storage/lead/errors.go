package lead

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("lead.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("lead.repository: failed to execute query")

	// ErrDuplicateReference возвращается при повторном использовании публичного идентификатора
	ErrDuplicateReference = errors.New("lead.repository: duplicate lead reference")
)
