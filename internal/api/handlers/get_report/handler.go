package get_report

import (
	"errors"
	"net/http"

	"github.com/helenacolabronze/booking-service/internal/api/handlers"
	"github.com/helenacolabronze/booking-service/internal/service/reservations"
)

const (
	msgInvalidDate  = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidRange = "período inválido, a data inicial deve ser anterior à final"
	msgMissingRange = "parâmetros start e end são obrigatórios"
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

// Handle GET /api/v1/admin/reports?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	result, err := h.service.Report(r.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidDate):
			h.logger.Warn("GET /admin/reports - Invalid date: start=%q, end=%q", start, end)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, reservations.ErrInvalidDateRange):
			h.logger.Warn("GET /admin/reports - Reversed range: start=%s, end=%s", start, end)
			handlers.RespondBadRequest(w, msgInvalidRange)
		default:
			h.logger.Error("GET /admin/reports - start=%s, end=%s, error=%v", start, end, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
