package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/engine"
	"github.com/osse101/PixelFarm_Go/internal/logger"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		intent     string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not ready", engine.IntentHarvest, domain.ErrCropNotReady, http.StatusConflict, "Not ready yet!"},
		{"seeds too expensive", engine.IntentPlant, fmt.Errorf("%w: seeds", domain.ErrInsufficientFunds), http.StatusConflict, "Not enough money for seeds!"},
		{"missing ingredients", engine.IntentCraft, domain.ErrMissingIngredients, http.StatusConflict, "Missing ingredients!"},
		{"occupied", engine.IntentPlant, domain.ErrSpaceOccupied, http.StatusBadRequest, "Not enough space!"},
		{"unknown order", engine.IntentFulfillOrder, domain.ErrUnknownOrder, http.StatusNotFound, "Unknown order"},
		{"bad save", engine.IntentLoad, domain.ErrInvalidSaveFormat, http.StatusUnprocessableEntity, "Invalid save file"},
		{"internal", engine.IntentLoad, errors.New("disk on fire"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", engine.IntentLoad, nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.intent, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondServiceError_HidesInternalReason(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r = r.WithContext(logger.WithRequestID(r.Context(), "req-9"))
	respondServiceError(w, r, engine.IntentLoad, errors.New("pq: secret"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	assert.JSONEq(t, `{"error":"Something went wrong","request_id":"req-9"}`, w.Body.String())
}

func TestRespondJSON_DropsOversizedBuffers(t *testing.T) {
	big := bytes.Repeat([]byte("x"), maxPooledBuffer*2)
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, DataResponse{Data: string(big)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Greater(t, w.Body.Len(), maxPooledBuffer*2)
}

func TestRespondServiceError_IncludesReason(t *testing.T) {
	w := httptest.NewRecorder()
	respondServiceError(w, httptest.NewRequest(http.MethodPost, "/", nil), engine.IntentHarvest, domain.ErrCropNotReady)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Not ready yet!","reason":"crop is not ready"}`, w.Body.String())
}
