package send_reminders

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/helenacolabronze/booking-service/internal/api/handlers"
	"github.com/helenacolabronze/booking-service/internal/service/reservations"
)

const (
	msgInvalidDate      = "formato de data inválido, esperado YYYY-MM-DD"
	msgNotifierDisabled = "o envio de lembretes não está configurado"
)

// RemindersResponse HTTP response model
type RemindersResponse struct {
	Date   string `json:"date"`
	Sent   int    `json:"sent"`
	Failed int    `json:"failed"`
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

// Handle POST /api/v1/admin/reminders/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.service.SendReminders(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidDate):
			h.logger.Warn("POST /admin/reminders/{date} - Invalid date %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, reservations.ErrNotifierDisabled):
			h.logger.Warn("POST /admin/reminders/{date} - Notifier disabled")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotifierDisabled)
		default:
			h.logger.Error("POST /admin/reminders/{date} - date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/reminders/{date} - date=%s, sent=%d, failed=%d", date, result.Sent, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, &RemindersResponse{
		Date:   result.Date,
		Sent:   result.Sent,
		Failed: result.Failed,
	})
}
