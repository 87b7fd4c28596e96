package jsonfile

import "errors"

var (
	// ErrReadDocument возвращается, когда файл документа не читается
	ErrReadDocument = errors.New("jsonfile.store: failed to read document")

	// ErrDecodeDocument возвращается, когда содержимое файла не является валидным JSON
	ErrDecodeDocument = errors.New("jsonfile.store: failed to decode document")

	// ErrWriteDocument возвращается, когда документ не записывается на диск
	ErrWriteDocument = errors.New("jsonfile.store: failed to write document")
)
