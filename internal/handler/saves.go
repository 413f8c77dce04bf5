package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/engine"
	"github.com/osse101/PixelFarm_Go/internal/logger"
	"github.com/osse101/PixelFarm_Go/internal/save"
)

// MaxSaveBytes caps an imported save file
const MaxSaveBytes = 1 << 20

// SlotRequest names a save slot; empty means the configured default
type SlotRequest struct {
	Slot string `json:"slot" validate:"slot"`
}

// LoadResponse summarises what happened while the farm was away
type LoadResponse struct {
	CropsReady  int      `json:"crops_ready"`
	AwayMinutes int      `json:"away_minutes"`
	Messages    []string `json:"messages"`
}

func newLoadResponse(rep *engine.Report) LoadResponse {
	return LoadResponse{
		CropsReady:  rep.CropsReady,
		AwayMinutes: rep.AwayMinutes(),
		Messages:    rep.Messages,
	}
}

func (h *FarmHandler) slotOrDefault(slot string) string {
	if slot == "" {
		return h.slot
	}
	return slot
}

// HandleSave writes the farm to a slot
// @Summary Save the farm
// @Tags saves
// @Accept json
// @Produce json
// @Param request body SlotRequest false "Slot"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/farm/save [post]
func (h *FarmHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Save"); err != nil {
			return
		}
	}
	slot := h.slotOrDefault(req.Slot)

	if err := h.engine.SaveTo(r.Context(), h.store, slot); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondServiceError(w, r, "save", err)
			return
		}
		logger.FromContext(r.Context()).Error("Failed to save game", "slot", slot, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgSaveFailed)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGameSaved})
}

// HandleLoad replaces the farm with the contents of a slot
// @Summary Load a saved farm
// @Tags saves
// @Accept json
// @Produce json
// @Param request body SlotRequest false "Slot"
// @Success 200 {object} LoadResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/farm/load [post]
func (h *FarmHandler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Load"); err != nil {
			return
		}
	}
	slot := h.slotOrDefault(req.Slot)

	rep, err := h.engine.LoadFrom(r.Context(), h.store, slot)
	if errors.Is(err, domain.ErrSaveNotFound) {
		respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgSaveNotFoundFm, slot))
		return
	}
	if err != nil {
		respondServiceError(w, r, engine.IntentLoad, err)
		return
	}
	respondJSON(w, http.StatusOK, newLoadResponse(rep))
}

// HandleExport downloads the farm as a save file
// @Summary Export the farm
// @Tags saves
// @Produce json
// @Success 200 {object} save.Snapshot
// @Router /api/v1/farm/export [get]
func (h *FarmHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	data, err := h.engine.Save(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="pixelfarm-save.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.FromContext(r.Context()).Warn("Failed to write export", "error", err)
	}
}

// HandleImport replaces the farm with an uploaded save file
// @Summary Import a save file
// @Tags saves
// @Accept json
// @Produce json
// @Param save body save.Snapshot true "Save file"
// @Success 200 {object} LoadResponse
// @Failure 413 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/farm/import [post]
func (h *FarmHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, MaxSaveBytes+1))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}
	if len(data) > MaxSaveBytes {
		respondError(w, http.StatusRequestEntityTooLarge, ErrMsgSaveTooLarge)
		return
	}

	rep, err := h.engine.Load(r.Context(), data)
	if err != nil {
		respondServiceError(w, r, engine.IntentLoad, err)
		return
	}
	respondJSON(w, http.StatusOK, newLoadResponse(rep))
}

// HandleListSaves lists stored slots, newest first
// @Summary List save slots
// @Tags saves
// @Produce json
// @Success 200 {array} save.Summary
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/saves [get]
func HandleListSaves(lister save.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slots, err := lister.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list saves", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListSavesFailed)
			return
		}
		if slots == nil {
			slots = []save.Summary{}
		}
		respondJSON(w, http.StatusOK, slots)
	}
}
