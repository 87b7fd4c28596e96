package create_reservation

import (
	"time"

	"github.com/helenacolabronze/booking-service/internal/domain"
	createReservation "github.com/helenacolabronze/booking-service/internal/usecase/create_reservation"
	"github.com/helenacolabronze/booking-service/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date          string `json:"date"` // "2026-09-10"
	Slot          string `json:"slot"` // "14:00"
	ClientName    string `json:"clientName"`
	ClientPhone   string `json:"clientPhone"`
	ClientEmail   string `json:"clientEmail,omitempty"`
	Service       string `json:"service"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Slot        string `json:"slot"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	ClientEmail string `json:"clientEmail,omitempty"`
	Service     string `json:"service"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Date:          date,
		Slot:          types.TimeString(r.Slot),
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		ClientEmail:   r.ClientEmail,
		Service:       r.Service,
		TermsAccepted: r.TermsAccepted,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		Date:        resp.Date,
		Slot:        resp.Slot.String(),
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		ClientEmail: resp.ClientEmail,
		Service:     resp.Service,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
