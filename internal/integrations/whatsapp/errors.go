package whatsapp

import "errors"

var (
	// ErrInvalidNumber возвращается, когда номер назначения слишком короткий
	// даже после добавления кода страны
	ErrInvalidNumber = errors.New("whatsapp client: invalid destination number")

	// ErrSendFailed возвращается, когда API сообщений отклонило отправку
	ErrSendFailed = errors.New("whatsapp client: failed to send message")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе API
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")
)
