package get_available_slots

import (
	"context"

	"github.com/helenacolabronze/booking-service/internal/domain"
)

// ReservationStore интерфейс хранилища документа бронирований
type ReservationStore interface {
	Load(ctx context.Context) (domain.ReservationsDocument, error)
}

// ScheduleStore интерфейс хранилища документа расписания
type ScheduleStore interface {
	Load(ctx context.Context) (domain.ScheduleDocument, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
