package backups

import (
	"context"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/internal/infra/storage/backup"
)

type ScheduleStore interface {
	Load(ctx context.Context) (domain.ScheduleDocument, error)
	Store(ctx context.Context, doc domain.ScheduleDocument) error
}

type ReservationStore interface {
	Load(ctx context.Context) (domain.ReservationsDocument, error)
	Store(ctx context.Context, doc domain.ReservationsDocument) error
}

type SnapshotManager interface {
	Snapshot(label string, doc interface{}) (string, error)
	List() ([]backup.Snapshot, error)
	Read(name string) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
