package send_reminders

import (
	"context"

	"github.com/helenacolabronze/booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	SendReminders(ctx context.Context, date string) (*models.RemindersResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
