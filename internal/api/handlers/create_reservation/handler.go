package create_reservation

import (
	"errors"
	"net/http"

	"github.com/helenacolabronze/booking-service/internal/api/handlers"
	createReservation "github.com/helenacolabronze/booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgSlotTaken          = "este horário acabou de ser reservado, escolha outro"
	msgDateBlocked        = "a agenda está fechada nesta data"
	msgSlotNotOffered     = "este horário não está disponível nesta data"
	msgInvalidName        = "informe o nome completo"
	msgInvalidPhone       = "número de WhatsApp inválido, informe DDD e número"
	msgInvalidEmail       = "e-mail inválido"
	msgInvalidSlot        = "horário inválido"
	msgUnknownService     = "serviço desconhecido"
	msgTermsNotAccepted   = "é necessário aceitar a política de cancelamento"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: date=%s, slot=%s", req.Date, req.Slot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReservation.ErrSlotNotOffered):
			h.logger.Warn("POST /reservations - Slot not offered: date=%s, slot=%s", req.Date, req.Slot)
			handlers.RespondConflict(w, msgSlotNotOffered)

		case errors.Is(err, createReservation.ErrDateBlocked):
			h.logger.Warn("POST /reservations - Date blocked: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateBlocked)

		case errors.Is(err, createReservation.ErrInvalidName):
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, createReservation.ErrInvalidPhone):
			h.logger.Warn("POST /reservations - Invalid phone: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createReservation.ErrInvalidEmail):
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrUnknownService):
			h.logger.Warn("POST /reservations - Unknown service: %q", req.Service)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createReservation.ErrTermsNotAccepted):
			handlers.RespondBadRequest(w, msgTermsNotAccepted)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, slot=%s, error=%v",
				req.Date, req.Slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, date=%s, slot=%s",
		result.ID, result.Date, result.Slot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
