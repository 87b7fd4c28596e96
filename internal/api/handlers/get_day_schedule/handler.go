package get_day_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/helenacolabronze/booking-service/internal/api/handlers"
	"github.com/helenacolabronze/booking-service/internal/service/schedule"
)

const (
	msgInvalidDate = "formato de data inválido, esperado YYYY-MM-DD"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.service.Get(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			h.logger.Warn("GET /admin/schedule/{date} - Invalid date %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /admin/schedule/{date} - date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
