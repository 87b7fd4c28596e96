package list_backups

import (
	"context"

	"github.com/helenacolabronze/booking-service/internal/infra/storage/backup"
)

type BackupsService interface {
	List(ctx context.Context) ([]backup.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
