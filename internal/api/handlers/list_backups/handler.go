package list_backups

import (
	"net/http"
	"time"

	"github.com/helenacolabronze/booking-service/internal/api/handlers"
)

// SnapshotItem HTTP model одного снапшота
type SnapshotItem struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	CreatedAt string `json:"createdAt"`
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

// Handle GET /api/v1/admin/backups
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/backups - %v", err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]SnapshotItem, 0, len(snapshots))
	for _, snap := range snapshots {
		items = append(items, SnapshotItem{
			Name:      snap.Name,
			Label:     snap.Label,
			CreatedAt: snap.CreatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}
