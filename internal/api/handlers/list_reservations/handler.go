package list_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/helenacolabronze/booking-service/internal/api/handlers"
	"github.com/helenacolabronze/booking-service/internal/service/reservations"
)

const (
	msgInvalidDate = "formato de data inválido, esperado YYYY-MM-DD"
)

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

// Handle GET /api/v1/admin/reservations/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidDate):
			h.logger.Warn("GET /admin/reservations/{date} - Invalid date %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /admin/reservations/{date} - date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
