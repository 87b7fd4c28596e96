package create_reservation

import (
	"context"
	"time"

	"github.com/helenacolabronze/booking-service/internal/domain"
)

// ReservationStore интерфейс хранилища документа бронирований
type ReservationStore interface {
	Load(ctx context.Context) (domain.ReservationsDocument, error)
	Store(ctx context.Context, doc domain.ReservationsDocument) error
}

// ScheduleStore интерфейс хранилища документа расписания
type ScheduleStore interface {
	Load(ctx context.Context) (domain.ScheduleDocument, error)
	Store(ctx context.Context, doc domain.ScheduleDocument) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
