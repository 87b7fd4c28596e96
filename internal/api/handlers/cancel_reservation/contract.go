package cancel_reservation

import (
	"context"

	"github.com/helenacolabronze/booking-service/internal/domain"
)

type ReservationsService interface {
	CancelByPosition(ctx context.Context, date string, position int) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
