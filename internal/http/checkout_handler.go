package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/InnoXenT9/aqua-earth-order/internal/service"
)

type CheckoutService interface {
	Submit(ctx context.Context, userID string, req service.CheckoutRequest) (*service.CheckoutResult, error)
}

type CheckoutHandler struct {
	checkout CheckoutService
	validate *validator.Validate
	timeout  time.Duration
}

func NewCheckoutHandler(checkout CheckoutService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		validate: validator.New(),
		timeout:  timeout,
	}
}

type CheckoutRequestDTO struct {
	Name            string `json:"name" validate:"required,min=2"`
	DeliveryAddress string `json:"delivery_address" validate:"required,min=10"`
	IdempotencyKey  string `json:"idempotency_key"`
}

type CheckoutResponseDTO struct {
	OrderID     string  `json:"order_id"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`
	WhatsAppURL string  `json:"whatsapp_url"`
}

// POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", checkoutValidationMessage(err))
		return
	}

	result, err := h.checkout.Submit(ctx, userID, service.CheckoutRequest{
		Name:            req.Name,
		DeliveryAddress: req.DeliveryAddress,
		IdempotencyKey:  req.IdempotencyKey,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	log.Info().
		Str("request_id", getRequestID(r.Context())).
		Str("user_id", userID).
		Str("order_id", result.Order.ID).
		Msg("order placed")

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		OrderID:     result.Order.ID,
		Total:       result.Order.Total,
		Status:      result.Order.Status.String(),
		WhatsAppURL: result.WhatsAppURL,
	})
}

func checkoutValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	switch verrs[0].Field() {
	case "Name":
		return "Please enter your full name."
	case "DeliveryAddress":
		return "Please enter a complete delivery address."
	default:
		return verrs[0].Error()
	}
}
