package get_available_slots

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/helenacolabronze/booking-service/internal/api/handlers"
	"github.com/helenacolabronze/booking-service/internal/domain"
	getAvailableSlots "github.com/helenacolabronze/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate = "formato de data inválido, esperado YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/{date}/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /schedule/{date}/available-slots - Invalid date %q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /schedule/{date}/available-slots - date=%s, error=%v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
