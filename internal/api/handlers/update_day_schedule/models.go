package update_day_schedule

import (
	"github.com/helenacolabronze/booking-service/internal/service/schedule/models"
)

// UpdateDayScheduleRequest HTTP request model
type UpdateDayScheduleRequest struct {
	Blocked        bool     `json:"blocked"`
	AvailableSlots []string `json:"availableSlots"`
}

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date           string   `json:"date"`
	Blocked        bool     `json:"blocked"`
	AvailableSlots []string `json:"availableSlots"`
	ReservedSlots  []string `json:"reservedSlots"`
	Configured     bool     `json:"configured"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateDayScheduleRequest) ToServiceRequest() *models.UpdateDayScheduleRequest {
	return &models.UpdateDayScheduleRequest{
		Blocked:        r.Blocked,
		AvailableSlots: r.AvailableSlots,
	}
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
