package clear_day

import "context"

type ReservationsService interface {
	ClearDay(ctx context.Context, date string) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
