package get_report

import (
	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/internal/service/reservations/models"
)

// ReportResponse HTTP response model
type ReportResponse struct {
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Days      []ReportDay `json:"days"`
	Total     int         `json:"total"`
}

// ReportDay агрегат по одной дате
type ReportDay struct {
	Date         string   `json:"date"`
	Count        int      `json:"count"`
	Reservations []string `json:"reservations"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response.
// Записи внутри отчета отдаются в строковом виде списка админ-панели.
func FromServiceResponse(resp *models.ReportResponse) *ReportResponse {
	days := make([]ReportDay, 0, len(resp.Days))
	for _, day := range resp.Days {
		days = append(days, ReportDay{
			Date:         day.Date,
			Count:        day.Count,
			Reservations: displayList(day.Reservations),
		})
	}
	return &ReportResponse{
		StartDate: resp.StartDate,
		EndDate:   resp.EndDate,
		Days:      days,
		Total:     resp.Total,
	}
}

func displayList(list []domain.Reservation) []string {
	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, r.Display())
	}
	return out
}
