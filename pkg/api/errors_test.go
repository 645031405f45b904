package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vendrahq/vendra/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation error", services.NewValidationError("name", "required"), http.StatusBadRequest, codeInvalidRequest},
		{"invalid input", services.ErrInvalidInput, http.StatusBadRequest, codeInvalidRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound, codeNotFound},
		{"forbidden", services.ErrForbidden, http.StatusForbidden, codeNotAllowed},
		{"addon inactive", services.ErrAddonInactive, http.StatusForbidden, codeAddonInactive},
		{"cancel deadline passed", services.ErrCancelDeadlinePassed, http.StatusConflict, codeCancelDeadline},
		{"session locked", services.ErrSessionLocked, http.StatusConflict, codeInvalidTransition},
		{"invalid transition", services.ErrInvalidTransition, http.StatusConflict, codeInvalidTransition},
		{"slot taken", services.ErrSlotTaken, http.StatusConflict, codeSlotTaken},
		{"no tables available", services.ErrNoTablesAvailable, http.StatusConflict, codeNoTablesAvailable},
		{"insufficient stock", services.ErrInsufficientStock, http.StatusConflict, codeInsufficientStock},
		{"empty cart", services.ErrEmptyCart, http.StatusConflict, codeEmptyCart},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict, codeAlreadyExists},
		{"concurrent modification", services.ErrConcurrentModification, http.StatusConflict, codeConcurrentModified},
		{"deadline exceeded", context.DeadlineExceeded, http.StatusGatewayTimeout, codeTimeout},
		{"wrapped not found", fmt.Errorf("failed to load order: %w", services.ErrNotFound), http.StatusNotFound, codeNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, codeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			mapServiceError(c, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, errorCode(t, rec))
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	mapServiceError(c, services.NewValidationError("price", "must not be negative"))

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
			Details struct {
				Field string `json:"field"`
			} `json:"details"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, codeInvalidRequest, envelope.Error.Code)
	assert.Equal(t, "price", envelope.Error.Details.Field)
}
