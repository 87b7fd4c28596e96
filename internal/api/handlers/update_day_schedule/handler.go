package update_day_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/helenacolabronze/booking-service/internal/api/handlers"
	"github.com/helenacolabronze/booking-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidSlot        = "horário fora do catálogo de slots"
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

// Handle PUT /api/v1/admin/schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	var req UpdateDayScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/schedule/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), date, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			h.logger.Warn("PUT /admin/schedule/{date} - Invalid date %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, schedule.ErrInvalidSlot):
			h.logger.Warn("PUT /admin/schedule/{date} - Invalid slot: date=%s, error=%v", date, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)
		default:
			h.logger.Error("PUT /admin/schedule/{date} - date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/schedule/{date} - Day updated: date=%s, blocked=%v, slots=%d",
		date, result.Blocked, len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
