package list_reservations

import (
	"time"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/internal/service/reservations/models"
)

// ReservationItem HTTP model одной записи в списке дня.
// Position — порядковый номер с единицы, им же пользуется отмена.
type ReservationItem struct {
	Position    int    `json:"position"`
	ID          string `json:"id"`
	Slot        string `json:"slot"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	ClientEmail string `json:"clientEmail,omitempty"`
	Service     string `json:"service"`
	CreatedAt   string `json:"createdAt"`
	Display     string `json:"display"`
}

// DayReservationsResponse HTTP response model
type DayReservationsResponse struct {
	Date         string            `json:"date"`
	Reservations []ReservationItem `json:"reservations"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.DayReservationsResponse) *DayReservationsResponse {
	return &DayReservationsResponse{
		Date:         resp.Date,
		Reservations: toItems(resp.Reservations),
	}
}

func toItems(list []domain.Reservation) []ReservationItem {
	items := make([]ReservationItem, 0, len(list))
	for i, r := range list {
		items = append(items, ReservationItem{
			Position:    i + 1,
			ID:          r.ID,
			Slot:        r.Slot.String(),
			ClientName:  r.ClientName,
			ClientPhone: r.ClientPhone,
			ClientEmail: r.ClientEmail,
			Service:     r.Service,
			CreatedAt:   r.CreatedAt.Format(time.RFC3339),
			Display:     r.Display(),
		})
	}
	return items
}
