package clear_day

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

// ClearedResponse HTTP response model
type ClearedResponse struct {
	Date    string `json:"date"`
	Removed int    `json:"removed"`
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

// Handle DELETE /api/v1/admin/reservations/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	removed, err := h.service.ClearDay(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidDate):
			h.logger.Warn("DELETE /admin/reservations/{date} - Invalid date %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("DELETE /admin/reservations/{date} - date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/reservations/{date} - Day cleared: date=%s, removed=%d", date, removed)
	handlers.RespondJSON(w, http.StatusOK, &ClearedResponse{Date: date, Removed: removed})
}
