package get_available_slots

import (
	"time"

	"github.com/helenacolabronze/booking-service/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Date time.Time // дата (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date    string             // дата (YYYY-MM-DD)
	Blocked bool               // дата заблокирована администратором
	Slots   []types.TimeString // свободные слоты в порядке конфигурации дня
}
