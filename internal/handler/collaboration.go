package handler

import (
	"log/slog"
	"net/http"

	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/service"
)

// CollaborationHandler serves the collaboration request endpoints.
type CollaborationHandler struct {
	service *service.CollaborationService
	logger  *slog.Logger
}

func NewCollaborationHandler(service *service.CollaborationService, logger *slog.Logger) *CollaborationHandler {
	return &CollaborationHandler{service: service, logger: logger}
}

// HandleList returns every request. GET /api/collaborations
func (h *CollaborationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

// HandleGet returns one request by id. GET /api/collaborations/{id}
func (h *CollaborationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid collaboration ID"})
		return
	}

	request, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

// HandleListByCreative returns requests where the creative is on either side.
// GET /api/collaborations/creative/{creativeId}
func (h *CollaborationHandler) HandleListByCreative(w http.ResponseWriter, r *http.Request) {
	creativeID, ok := pathID(r, "creativeId")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid creative ID"})
		return
	}

	requests, err := h.service.ListByCreative(r.Context(), creativeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

// HandleCreate creates a request. POST /api/collaborations
func (h *CollaborationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.InsertCollaborationRequest
	if !decodeBody(w, r, &in) {
		return
	}

	request, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

// HandleUpdateStatus responds to a request. PATCH /api/collaborations/{id}/status
// with body {"status": "accepted" | "declined" | "completed"}.
func (h *CollaborationHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid collaboration ID"})
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	request, err := h.service.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}
