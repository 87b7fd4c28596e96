package sheets

import "errors"

var (
	// ErrConnect возвращается, когда клиент Google Sheets не инициализируется
	// (например, некорректные учетные данные сервисного аккаунта)
	ErrConnect = errors.New("sheets.store: failed to connect to spreadsheet")

	// ErrReadDocument возвращается при ошибке чтения вкладки
	ErrReadDocument = errors.New("sheets.store: failed to read document")

	// ErrWriteDocument возвращается при ошибке перезаписи вкладки
	ErrWriteDocument = errors.New("sheets.store: failed to write document")

	// ErrDecodeDocument возвращается, когда строки вкладки не соответствуют ожидаемым колонкам
	ErrDecodeDocument = errors.New("sheets.store: failed to decode document")
)
