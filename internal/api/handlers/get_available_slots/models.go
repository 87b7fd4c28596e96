package get_available_slots

import (
	getAvailableSlots "github.com/helenacolabronze/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date    string   `json:"date"`
	Blocked bool     `json:"blocked"`
	Slots   []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}
	return &AvailableSlotsResponse{
		Date:    resp.Date,
		Blocked: resp.Blocked,
		Slots:   slots,
	}
}
