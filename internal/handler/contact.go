package handler

import (
	"log/slog"
	"net/http"

	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/service"
)

// ContactHandler serves the contact form endpoints.
type ContactHandler struct {
	service *service.ContactService
	logger  *slog.Logger
}

func NewContactHandler(service *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{service: service, logger: logger}
}

// HandleList returns every message. GET /api/contact
func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// HandleGet returns one message by id. GET /api/contact/{id}
func (h *ContactHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid contact message ID"})
		return
	}

	message, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, message)
}

// HandleCreate stores a submitted contact form. POST /api/contact
func (h *ContactHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.InsertContactMessage
	if !decodeBody(w, r, &in) {
		return
	}

	message, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}
