package handler

import (
	"log/slog"
	"net/http"

	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/service"
)

// CreativeHandler serves the creative profile endpoints.
type CreativeHandler struct {
	service *service.CreativeService
	logger  *slog.Logger
}

func NewCreativeHandler(service *service.CreativeService, logger *slog.Logger) *CreativeHandler {
	return &CreativeHandler{service: service, logger: logger}
}

// HandleList returns every profile. GET /api/creatives
func (h *CreativeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// HandleGet returns one profile by id. GET /api/creatives/{id}
func (h *CreativeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid creative ID"})
		return
	}

	profile, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleCreate creates a profile. POST /api/creatives
func (h *CreativeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.InsertCreativeProfile
	if !decodeBody(w, r, &in) {
		return
	}

	profile, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

// HandleUpdate applies a partial update. PATCH /api/creatives/{id}
func (h *CreativeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid creative ID"})
		return
	}

	var upd model.ProfileUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	profile, err := h.service.Update(r.Context(), id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
