package get_day_schedule

import (
	"github.com/helenacolabronze/booking-service/internal/service/schedule/models"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date           string   `json:"date"`
	Blocked        bool     `json:"blocked"`
	AvailableSlots []string `json:"availableSlots"`
	ReservedSlots  []string `json:"reservedSlots"`
	Configured     bool     `json:"configured"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.DayScheduleResponse) *DayScheduleResponse {
	return &DayScheduleResponse{
		Date:           resp.Date,
		Blocked:        resp.Blocked,
		AvailableSlots: resp.AvailableSlots,
		ReservedSlots:  resp.ReservedSlots,
		Configured:     resp.Configured,
	}
}
