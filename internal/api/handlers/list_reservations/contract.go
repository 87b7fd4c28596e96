package list_reservations

import (
	"context"

	"github.com/helenacolabronze/booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	ListByDate(ctx context.Context, date string) (*models.DayReservationsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
