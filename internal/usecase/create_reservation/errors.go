package create_reservation

import "errors"

var (
	// ErrSlotTaken возвращается, когда слот уже занят другим бронированием.
	// Это единственная ожидаемая гонка: клиент отправил форму со слотом,
	// который успели занять между рендером страницы и отправкой.
	ErrSlotTaken = errors.New("create_reservation: slot is already taken")

	// ErrDateBlocked возвращается, когда дата заблокирована администратором
	ErrDateBlocked = errors.New("create_reservation: date is blocked")

	// ErrSlotNotOffered возвращается, когда слот не входит в список
	// предлагаемых на эту дату (дата не настроена или слот убран)
	ErrSlotNotOffered = errors.New("create_reservation: slot is not offered on this date")

	// ErrInvalidName возвращается при пустом имени клиента
	ErrInvalidName = errors.New("create_reservation: client name is required")

	// ErrInvalidPhone возвращается при некорректном номере WhatsApp
	ErrInvalidPhone = errors.New("create_reservation: invalid whatsapp number")

	// ErrInvalidEmail возвращается при некорректном e-mail
	ErrInvalidEmail = errors.New("create_reservation: invalid email")

	// ErrInvalidSlot возвращается, когда слот не входит в каталог допустимых времен
	ErrInvalidSlot = errors.New("create_reservation: invalid slot value")

	// ErrUnknownService возвращается, когда услуга не входит в каталог
	ErrUnknownService = errors.New("create_reservation: unknown service")

	// ErrTermsNotAccepted возвращается, когда клиент не принял условия отмены
	ErrTermsNotAccepted = errors.New("create_reservation: cancellation terms must be accepted")

	// ErrInvalidInput возвращается при прочих некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase (I/O хранилища)
	ErrInternal = errors.New("create_reservation: internal error")
)
