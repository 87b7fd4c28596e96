package schedule

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате (ожидается YYYY-MM-DD)
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidSlot возвращается, когда слот не входит в каталог допустимых времен
	ErrInvalidSlot = errors.New("invalid slot value")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
