package handler

import (
	"log/slog"
	"net/http"

	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/service"
)

// PortfolioHandler serves the portfolio endpoints. The public listing only
// shows approved items; pending items are reachable through their own route.
type PortfolioHandler struct {
	service *service.PortfolioService
	logger  *slog.Logger
}

func NewPortfolioHandler(service *service.PortfolioService, logger *slog.Logger) *PortfolioHandler {
	return &PortfolioHandler{service: service, logger: logger}
}

// HandleList returns approved items. GET /api/portfolio
func (h *PortfolioHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListApproved(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// HandleListFeatured returns the featured subset. GET /api/portfolio/featured
func (h *PortfolioHandler) HandleListFeatured(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListFeatured(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// HandleListPending returns unapproved items. GET /api/portfolio/pending
func (h *PortfolioHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// HandleListByCreative returns a creative's items. GET /api/portfolio/creative/{creativeId}
func (h *PortfolioHandler) HandleListByCreative(w http.ResponseWriter, r *http.Request) {
	creativeID, ok := pathID(r, "creativeId")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid creative ID"})
		return
	}

	items, err := h.service.ListByCreative(r.Context(), creativeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// HandleGet returns one item by id. GET /api/portfolio/{id}
func (h *PortfolioHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid portfolio item ID"})
		return
	}

	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// HandleCreate creates an item. POST /api/portfolio
func (h *PortfolioHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.InsertPortfolioItem
	if !decodeBody(w, r, &in) {
		return
	}

	item, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// HandleApprove marks an item approved. PATCH /api/portfolio/{id}/approve
func (h *PortfolioHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid portfolio item ID"})
		return
	}

	item, err := h.service.Approve(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
