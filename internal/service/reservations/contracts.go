package reservations

import (
	"context"

	"github.com/helenacolabronze/booking-service/internal/domain"
)

type ReservationStore interface {
	Load(ctx context.Context) (domain.ReservationsDocument, error)
	Store(ctx context.Context, doc domain.ReservationsDocument) error
}

// Notifier отправляет напоминания клиентам. Может отсутствовать,
// если интеграция с WhatsApp не настроена.
type Notifier interface {
	SendReminder(ctx context.Context, destination, clientName, date string, slot string) (string, error)
}

type Snapshotter interface {
	SnapshotAll(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
