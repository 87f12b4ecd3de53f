package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
		{"wrapped funds", fmt.Errorf("%w: need 10", domain.ErrInsufficientFunds), http.StatusConflict, ErrMsgNotEnoughCoinsError},
		{"double wrapped max level", fmt.Errorf("buy: %w", fmt.Errorf("%w: x", domain.ErrMaxLevelReached)), http.StatusConflict, ErrMsgMaxLevelError},
		{"unknown upgrade", domain.ErrUnknownUpgrade, http.StatusNotFound, ErrMsgUnknownUpgradeError},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound, ErrMsgTaskNotFoundError},
		{"task requirement", domain.ErrTaskRequirementNotMet, http.StatusForbidden, ErrMsgTaskNotClaimableError},
		{"task done", domain.ErrTaskAlreadyCompleted, http.StatusConflict, ErrMsgTaskAlreadyClaimedErr},
		{"persistence", domain.ErrPersistenceFailure, http.StatusServiceUnavailable, ErrMsgStorageUnavailableErr},
		{"catalog", domain.ErrMalformedCatalog, http.StatusInternalServerError, ErrMsgCatalogUnavailableErr},
		{"raw error hidden", errors.New("pq: connection refused"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON(t *testing.T) {
	t.Run("encodes payload", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondJSON(rec, http.StatusCreated, ErrorResponse{Error: "x"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"error":"x"}`, rec.Body.String())
	})

	t.Run("unencodable payload becomes 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
