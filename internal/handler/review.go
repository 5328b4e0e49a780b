package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopfront/shopfront/internal/handler/dto"
	"github.com/shopfront/shopfront/internal/service"
)

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	svc    *service.ReviewService
	logger *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(svc *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		svc:    svc,
		logger: logger,
	}
}

// Submit handles POST /submit-review.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	input := service.SubmitReviewInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Text:      req.Text,
	}

	review, err := h.svc.SubmitReview(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("review_submitted",
		"review_id", review.ID,
	)

	writeJSON(w, http.StatusCreated, dto.SubmitReviewResponse{
		Message: "Review submitted successfully",
		Review:  dto.ToReviewResponse(review),
	})
}

// List handles GET /reviews.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	previews, err := h.svc.ListRandom(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReviewListResponse(previews))
}

// handleServiceError maps service errors to HTTP responses.
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		h.writeError(w, http.StatusBadRequest, "MISSING_FIELDS", "Please provide all required fields")
	case errors.Is(err, service.ErrNoReviews):
		h.writeError(w, http.StatusNotFound, "NO_REVIEWS", "No reviews found")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Server error")
	}
}

// writeError writes an error response.
func (h *ReviewHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
