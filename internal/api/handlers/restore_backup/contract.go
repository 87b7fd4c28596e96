package restore_backup

import "context"

type BackupsService interface {
	Restore(ctx context.Context, name string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
