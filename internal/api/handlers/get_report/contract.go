package get_report

import (
	"context"

	"github.com/helenacolabronze/booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	Report(ctx context.Context, startDate, endDate string) (*models.ReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
