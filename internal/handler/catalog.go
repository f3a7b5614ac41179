package handler

import (
	"log/slog"
	"net/http"

	"github.com/wearecreatives/api/internal/service"
)

// CatalogHandler serves the read-only service catalog.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

func NewCatalogHandler(service *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, logger: logger}
}

// HandleList returns the full catalog. GET /api/services
func (h *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

// HandleGet returns one catalog entry. GET /api/services/{id}
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid service ID"})
		return
	}

	svc, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}
