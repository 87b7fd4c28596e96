package update_day_schedule

import (
	"context"

	"github.com/helenacolabronze/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	Update(ctx context.Context, date string, req *models.UpdateDayScheduleRequest) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
