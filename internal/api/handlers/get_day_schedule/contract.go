package get_day_schedule

import (
	"context"

	"github.com/helenacolabronze/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	Get(ctx context.Context, date string) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
