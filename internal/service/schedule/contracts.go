package schedule

import (
	"context"

	"github.com/helenacolabronze/booking-service/internal/domain"
)

// ScheduleStore интерфейс хранилища документа расписания
type ScheduleStore interface {
	Load(ctx context.Context) (domain.ScheduleDocument, error)
	Store(ctx context.Context, doc domain.ScheduleDocument) error
}

// ReservationStore интерфейс хранилища документа бронирований
// (только чтение: для отображения занятых слотов рядом с конфигурацией дня)
type ReservationStore interface {
	Load(ctx context.Context) (domain.ReservationsDocument, error)
}

// Snapshotter делает снапшот обоих документов после мутации
type Snapshotter interface {
	SnapshotAll(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
