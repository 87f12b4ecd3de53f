package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// RejectionResponse is returned when the engine rejects an intent. The view
// is the unchanged state so clients can re-render without another request.
type RejectionResponse struct {
	Error string      `json:"error"`
	View  domain.View `json:"view"`
}

// PlayerResponse wraps a view with an optional message
type PlayerResponse struct {
	Message  string      `json:"message,omitempty"`
	PlayerID string      `json:"player_id,omitempty"`
	View     domain.View `json:"view"`
}

// Encoded views are a few hundred bytes; buffers that grew past
// maxPooledBuffer are left for the GC instead of pinning memory.
const maxPooledBuffer = 64 << 10

var responseBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, 1024)) },
}

// respondJSON encodes payload before writing headers so an encoding failure
// can still become a 500
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := responseBuffers.Get().(*bytes.Buffer)
	defer func() {
		if buf.Cap() <= maxPooledBuffer {
			buf.Reset()
			responseBuffers.Put(buf)
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// WriteError writes a JSON error body outside of a handler, e.g. from middleware
func WriteError(w http.ResponseWriter, status int, message string) {
	respondError(w, status, message)
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+": service error", "error", err)
	} else {
		log.Warn(opName+": rejected", "error", err)
	}
	respondError(w, status, msg)
}

// respondRejection is respondServiceError for intents that return the current
// view alongside a gameplay rejection
func respondRejection(w http.ResponseWriter, r *http.Request, opName string, view domain.View, err error) {
	if !isRejection(err) {
		respondServiceError(w, r, opName, err)
		return
	}
	status, msg := mapServiceErrorToUserMessage(err)
	logger.FromContext(r.Context()).Debug(opName+": rejected", "error", err)
	respondJSON(w, status, RejectionResponse{Error: msg, View: view})
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrMaxLevelReached) ||
		errors.Is(err, domain.ErrTaskAlreadyCompleted) ||
		errors.Is(err, domain.ErrTaskRequirementNotMet)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrMaxLevelReached):
		return http.StatusConflict, ErrMsgMaxLevelError
	case errors.Is(err, domain.ErrUnknownUpgrade):
		return http.StatusNotFound, ErrMsgUnknownUpgradeError
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, ErrMsgTaskNotFoundError
	case errors.Is(err, domain.ErrTaskRequirementNotMet):
		return http.StatusForbidden, ErrMsgTaskNotClaimableError
	case errors.Is(err, domain.ErrTaskAlreadyCompleted):
		return http.StatusConflict, ErrMsgTaskAlreadyClaimedErr
	case errors.Is(err, domain.ErrPersistenceFailure):
		return http.StatusServiceUnavailable, ErrMsgStorageUnavailableErr
	case errors.Is(err, domain.ErrMalformedCatalog):
		return http.StatusInternalServerError, ErrMsgCatalogUnavailableErr
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
