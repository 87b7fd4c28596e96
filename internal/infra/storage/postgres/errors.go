package postgres

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("postgres.store: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("postgres.store: failed to execute query")

	// ErrDecodeDocument возвращается, когда сохраненный документ не является валидным JSON
	ErrDecodeDocument = errors.New("postgres.store: failed to decode document")

	// ErrEncodeDocument возвращается при ошибке сериализации документа
	ErrEncodeDocument = errors.New("postgres.store: failed to encode document")
)
