package create_reservation

import (
	"time"

	"github.com/helenacolabronze/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date          time.Time        // дата бронирования (без времени)
	Slot          types.TimeString // выбранный слот, напр. "14:00"
	ClientName    string           // полное имя клиента
	ClientPhone   string           // сырой номер WhatsApp, до нормализации
	ClientEmail   string           // e-mail (опционально)
	Service       string           // услуга из каталога
	TermsAccepted bool             // клиент принял условия отмены
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string           // ID созданного бронирования
	Date        string           // дата (YYYY-MM-DD)
	Slot        types.TimeString // слот
	ClientName  string           // имя клиента
	ClientPhone string           // нормализованный номер (55 + DDD + номер)
	ClientEmail string           // e-mail
	Service     string           // услуга
	CreatedAt   time.Time        // время создания
}
