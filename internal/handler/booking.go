package handler

import (
	"log/slog"
	"net/http"

	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/service"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	service *service.BookingService
	logger  *slog.Logger
}

func NewBookingHandler(service *service.BookingService, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

// HandleList returns every booking. GET /api/bookings
func (h *BookingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// HandleGet returns one booking by id. GET /api/bookings/{id}
func (h *BookingHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid booking ID"})
		return
	}

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// HandleCreate creates a booking. POST /api/bookings
func (h *BookingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.InsertBooking
	if !decodeBody(w, r, &in) {
		return
	}

	booking, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}
