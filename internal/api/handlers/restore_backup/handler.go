package restore_backup

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/helenacolabronze/booking-service/internal/api/handlers"
	"github.com/helenacolabronze/booking-service/internal/service/backups"
)

const (
	msgSnapshotNotFound = "backup não encontrado"
	msgInvalidSnapshot  = "nome de backup inválido"
)

// RestoredResponse HTTP response model
type RestoredResponse struct {
	Name     string `json:"name"`
	Restored bool   `json:"restored"`
}

type Handler struct {
	service BackupsService
	logger  Logger
}

func NewHandler(service BackupsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/backups/{name}/restore
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.service.Restore(r.Context(), name); err != nil {
		switch {
		case errors.Is(err, backups.ErrSnapshotNotFound):
			h.logger.Warn("POST /admin/backups/{name}/restore - Not found: %s", name)
			handlers.RespondNotFound(w, msgSnapshotNotFound)
		case errors.Is(err, backups.ErrInvalidSnapshot):
			h.logger.Warn("POST /admin/backups/{name}/restore - Invalid snapshot %q: %v", name, err)
			handlers.RespondBadRequest(w, msgInvalidSnapshot)
		default:
			h.logger.Error("POST /admin/backups/{name}/restore - name=%s, error=%v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/backups/{name}/restore - Restored: %s", name)
	handlers.RespondJSON(w, http.StatusOK, &RestoredResponse{Name: name, Restored: true})
}
