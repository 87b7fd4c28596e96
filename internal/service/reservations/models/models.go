package models

import "github.com/helenacolabronze/booking-service/internal/domain"

// DayReservationsResponse список записей на конкретную дату
type DayReservationsResponse struct {
	Date         string               `json:"date"`
	Reservations []domain.Reservation `json:"reservations"`
}

// ReportResponse отчет по записям за период
type ReportResponse struct {
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Days      []ReportDay `json:"days"`
	Total     int         `json:"total"`
}

// ReportDay агрегат по одной дате внутри отчета
type ReportDay struct {
	Date         string               `json:"date"`
	Count        int                  `json:"count"`
	Reservations []domain.Reservation `json:"reservations"`
}

// RemindersResponse итог рассылки напоминаний за дату
type RemindersResponse struct {
	Date   string `json:"date"`
	Sent   int    `json:"sent"`
	Failed int    `json:"failed"`
}
