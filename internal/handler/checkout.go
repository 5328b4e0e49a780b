package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopfront/shopfront/internal/handler/dto"
	"github.com/shopfront/shopfront/internal/service"
)

// CheckoutHandler handles HTTP requests for the checkout flow.
type CheckoutHandler struct {
	svc    *service.CheckoutService
	logger *slog.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		svc:    svc,
		logger: logger,
	}
}

// Checkout handles POST /api/checkout.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.svc.Checkout(r.Context(), req.Email, req.OrderDetails.ToOrder()); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("order_confirmed",
		"item_count", len(req.OrderDetails.Items),
	)

	writeJSON(w, http.StatusOK, dto.MessageResponse{
		Message: "Order confirmed. Confirmation email sent!",
	})
}

// handleServiceError maps service errors to HTTP responses.
func (h *CheckoutHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingOrderData):
		h.writeError(w, http.StatusBadRequest, "MISSING_ORDER_DATA", "Missing order details or email")
	case errors.Is(err, service.ErrMailDispatch):
		h.logger.Error("mail_dispatch_failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "MAIL_ERROR", "Error processing checkout and sending email.")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Server error")
	}
}

// writeError writes an error response.
func (h *CheckoutHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
