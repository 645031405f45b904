package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendrahq/vendra/pkg/services"
)

// Machine codes shared with the tool envelope, plus the transport-only codes
// the HTTP layer needs (request decoding, auth, uniqueness).
const (
	codeInvalidRequest     = "INVALID_REQUEST"
	codeUnauthorized       = "UNAUTHORIZED"
	codeNotFound           = "NOT_FOUND"
	codeNotAllowed         = "NOT_ALLOWED"
	codeAddonInactive      = "ADDON_INACTIVE"
	codeInvalidTransition  = "INVALID_TRANSITION"
	codeCancelDeadline     = "CANCEL_DEADLINE_PASSED"
	codeSlotTaken          = "SLOT_TAKEN"
	codeNoTablesAvailable  = "NO_TABLES_AVAILABLE"
	codeInsufficientStock  = "INSUFFICIENT_STOCK"
	codeEmptyCart          = "EMPTY_CART"
	codeAlreadyExists      = "ALREADY_EXISTS"
	codeConcurrentModified = "CONFLICT"
	codeTimeout            = "TIMEOUT"
	codeInternal           = "INTERNAL"
)

// mapServiceError translates service-layer errors into the error envelope.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, validErr.Message,
			gin.H{"field": validErr.Field})
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, codeNotFound, "resource not found")
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, codeNotAllowed, "not allowed")
	case errors.Is(err, services.ErrAddonInactive):
		respondError(c, http.StatusForbidden, codeAddonInactive, "required addon is not active for this business")
	case errors.Is(err, services.ErrCancelDeadlinePassed):
		respondError(c, http.StatusConflict, codeCancelDeadline, "the cancellation deadline has passed")
	case errors.Is(err, services.ErrSessionLocked):
		respondError(c, http.StatusConflict, codeInvalidTransition, "session is already locked to a human agent")
	case errors.Is(err, services.ErrInvalidTransition):
		respondError(c, http.StatusConflict, codeInvalidTransition, err.Error())
	case errors.Is(err, services.ErrSlotTaken):
		respondError(c, http.StatusConflict, codeSlotTaken, "that slot was just booked")
	case errors.Is(err, services.ErrNoTablesAvailable):
		respondError(c, http.StatusConflict, codeNoTablesAvailable, "no tables available for the requested slot")
	case errors.Is(err, services.ErrInsufficientStock):
		respondError(c, http.StatusConflict, codeInsufficientStock, "insufficient stock")
	case errors.Is(err, services.ErrEmptyCart):
		respondError(c, http.StatusConflict, codeEmptyCart, "cart is empty")
	case errors.Is(err, services.ErrAlreadyExists):
		respondError(c, http.StatusConflict, codeAlreadyExists, "resource already exists")
	case errors.Is(err, services.ErrConcurrentModification):
		respondError(c, http.StatusConflict, codeConcurrentModified, "resource was modified concurrently, retry")
	case errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusGatewayTimeout, codeTimeout, "request timed out")
	default:
		slog.Error("Unexpected service error", "path", c.Request.URL.Path, "error", err)
		respondError(c, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
