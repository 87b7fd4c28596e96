package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/helenacolabronze/booking-service/internal/api/handlers"
	"github.com/helenacolabronze/booking-service/internal/service/reservations"
)

const (
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidPosition    = "posição inválida, esperado número a partir de 1"
	msgPositionOutOfRange = "não existe reserva nesta posição"
)

// CancelledResponse HTTP response model
type CancelledResponse struct {
	Date      string `json:"date"`
	Position  int    `json:"position"`
	Slot      string `json:"slot"`
	Client    string `json:"client"`
	Cancelled bool   `json:"cancelled"`
}

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/reservations/{date}/{position}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := vars["date"]

	position, err := strconv.Atoi(vars["position"])
	if err != nil || position < 1 {
		h.logger.Warn("DELETE /admin/reservations/{date}/{position} - Invalid position %q", vars["position"])
		handlers.RespondBadRequest(w, msgInvalidPosition)
		return
	}

	cancelled, err := h.service.CancelByPosition(r.Context(), date, position)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidDate):
			h.logger.Warn("DELETE /admin/reservations/{date}/{position} - Invalid date %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, reservations.ErrPositionOutOfRange):
			h.logger.Warn("DELETE /admin/reservations/{date}/{position} - Out of range: date=%s, position=%d", date, position)
			handlers.RespondNotFound(w, msgPositionOutOfRange)
		default:
			h.logger.Error("DELETE /admin/reservations/{date}/{position} - date=%s, position=%d, error=%v", date, position, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/reservations/{date}/{position} - Cancelled: date=%s, slot=%s", date, cancelled.Slot)
	handlers.RespondJSON(w, http.StatusOK, &CancelledResponse{
		Date:      date,
		Position:  position,
		Slot:      cancelled.Slot.String(),
		Client:    cancelled.ClientName,
		Cancelled: true,
	})
}
