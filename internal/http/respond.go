package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/InnoXenT9/aqua-earth-order/internal/catalog"
	"github.com/InnoXenT9/aqua-earth-order/internal/repository"
	"github.com/InnoXenT9/aqua-earth-order/internal/service"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: "",
	})
}

// handleServiceError maps service and repository sentinels to HTTP
// responses. Identity errors get the fixed human-readable message set;
// everything unclassified falls back to a generic notice.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", "Your cart is empty.")
	case errors.Is(err, service.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, "invalid_quantity", "Quantity must be at least 1.")
	case errors.Is(err, service.ErrWrongCredentials):
		respondError(w, http.StatusUnauthorized, "wrong_credentials", "Invalid email or password.")
	case errors.Is(err, service.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, "invalid_token", "Invalid or expired session.")
	case errors.Is(err, service.ErrInvalidTransition):
		respondError(w, http.StatusConflict, "invalid_status_transition", "This status change is not allowed.")
	case errors.Is(err, repository.ErrEmailExists):
		respondError(w, http.StatusConflict, "email_exists", "An account with this email already exists.")
	case errors.Is(err, repository.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "not_found", "User not found.")
	case errors.Is(err, repository.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "not_found", "Order not found.")
	case errors.Is(err, catalog.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "not_found", "Product not found.")
	case errors.Is(err, catalog.ErrVariantNotFound):
		respondError(w, http.StatusNotFound, "not_found", "Variant not found.")
	default:
		log.Error().Err(err).Msg("unhandled service error")
		respondError(w, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred. Please try again.")
	}
}
