package get_services

import (
	"net/http"

	"github.com/helenacolabronze/booking-service/internal/api/handlers"
	"github.com/helenacolabronze/booking-service/internal/domain"
)

// ServiceResponse HTTP model одной услуги каталога
type ServiceResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Handler отдает фиксированный каталог услуг салона
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	services := make([]ServiceResponse, 0, len(domain.ServiceCatalog))
	for _, s := range domain.ServiceCatalog {
		services = append(services, ServiceResponse{Name: s.Name, Price: s.Price})
	}
	handlers.RespondJSON(w, http.StatusOK, services)
}
