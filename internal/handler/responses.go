package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/engine"
	"github.com/osse101/PixelFarm_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Reason carries the internal
// error text for clients that want to branch on it.
type ErrorResponse struct {
	Error     string `json:"error"`
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Snapshots of a fully unlocked farm run to tens of kilobytes; buffers that
// grew past maxPooledBuffer are left for the GC instead of pinned in the pool.
const maxPooledBuffer = 64 << 10

var encodeBuffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

func releaseBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	encodeBuffers.Put(buf)
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer releaseBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for errors without a more specific rendering
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
)

// statusForError maps an error category to an HTTP status
func statusForError(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientResource), errors.Is(err, domain.ErrNotReady):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownEntity):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMalformedSave):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// mapServiceErrorToUserMessage converts an intent error to a status code and
// the same text the player sees in the notification feed
func mapServiceErrorToUserMessage(intent string, err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		return status, ErrMsgGenericServerError
	}
	return status, engine.RejectionMessage(intent, err)
}

// respondServiceError logs a failed intent and writes the mapped error
func respondServiceError(w http.ResponseWriter, r *http.Request, intent string, err error) {
	status, msg := mapServiceErrorToUserMessage(intent, err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "intent", intent, "error", err)
		respondJSON(w, status, ErrorResponse{Error: msg, RequestID: logger.GetRequestID(r.Context())})
		return
	}
	log.Debug("Intent rejected", "intent", intent, "error", err, "status", status)
	respondJSON(w, status, ErrorResponse{Error: msg, Reason: err.Error()})
}
