package handler

import (
	"log/slog"
	"net/http"

	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/service"
)

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	service *service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(service *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{service: service, logger: logger}
}

// HandleListByCreative returns a creative's reviews. GET /api/reviews/creative/{creativeId}
func (h *ReviewHandler) HandleListByCreative(w http.ResponseWriter, r *http.Request) {
	creativeID, ok := pathID(r, "creativeId")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Invalid creative ID"})
		return
	}

	reviews, err := h.service.ListByCreative(r.Context(), creativeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// HandleCreate creates a review and refreshes the target creative's rating.
// POST /api/reviews
func (h *ReviewHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.InsertCreativeReview
	if !decodeBody(w, r, &in) {
		return
	}

	review, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}
