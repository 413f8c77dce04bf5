package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PixelFarm_Go/internal/engine"
	"github.com/osse101/PixelFarm_Go/internal/logger"
	"github.com/osse101/PixelFarm_Go/internal/save"
	"github.com/osse101/PixelFarm_Go/internal/texture"
	"github.com/osse101/PixelFarm_Go/internal/worker"
)

// Enqueuer schedules background work without blocking the request
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// FarmHandler serves the player intents of one farm
type FarmHandler struct {
	engine *engine.Engine
	store  save.Store
	slot   string

	pool     Enqueuer
	textures texture.Fetcher
}

// NewFarmHandler creates a handler for eng. store and slot back the save and
// load endpoints.
func NewFarmHandler(eng *engine.Engine, store save.Store, slot string) *FarmHandler {
	return &FarmHandler{engine: eng, store: store, slot: slot}
}

// WithTextures enables forest generation through pool
func (h *FarmHandler) WithTextures(pool Enqueuer, fetcher texture.Fetcher) *FarmHandler {
	h.pool = pool
	h.textures = fetcher
	return h
}

// PlantRequest is the body of a plant intent. Drag marks one step of a
// drag-to-plant gesture, which fails silently.
type PlantRequest struct {
	PlotID int    `json:"plot_id" validate:"min=0"`
	ItemID string `json:"item_id" validate:"required,catalogid"`
	Drag   bool   `json:"drag"`
}

// HarvestRequest is the body of a single-plot harvest intent
type HarvestRequest struct {
	PlotID int  `json:"plot_id" validate:"min=0"`
	Drag   bool `json:"drag"`
}

// CraftRequest is the body of a craft intent
type CraftRequest struct {
	RecipeID string `json:"recipe_id" validate:"required,catalogid"`
}

// SellRequest is the body of a sell intent
type SellRequest struct {
	ItemID string `json:"item_id" validate:"required,catalogid"`
}

// SellResponse reports whether a unit was sold
type SellResponse struct {
	Sold    bool   `json:"sold"`
	Message string `json:"message,omitempty"`
}

// HandleGetState returns the current game state
// @Summary Get farm state
// @Tags farm
// @Produce json
// @Success 200 {object} domain.GameState
// @Router /api/v1/farm/state [get]
func (h *FarmHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.engine.Snapshot())
}

// HandlePlant plants a crop with its top-left corner on a plot
// @Summary Plant a crop
// @Tags farm
// @Accept json
// @Produce json
// @Param request body PlantRequest true "Plant request"
// @Success 201 {object} engine.PlantResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/farm/plant [post]
func (h *FarmHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}
	res, err := h.engine.Plant(r.Context(), req.PlotID, req.ItemID, req.Drag)
	if err != nil {
		respondServiceError(w, r, engine.IntentPlant, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

// HandleHarvest harvests the crop covering a plot
// @Summary Harvest one crop
// @Tags farm
// @Accept json
// @Produce json
// @Param request body HarvestRequest true "Harvest request"
// @Success 200 {object} engine.HarvestResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/farm/harvest [post]
func (h *FarmHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	var req HarvestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
		return
	}
	res, err := h.engine.HarvestOne(r.Context(), req.PlotID, req.Drag)
	if err != nil {
		respondServiceError(w, r, engine.IntentHarvest, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleHarvestAll harvests every ready crop
// @Summary Harvest all ready crops
// @Tags farm
// @Produce json
// @Success 200 {object} engine.HarvestResult
// @Router /api/v1/farm/harvest-all [post]
func (h *FarmHandler) HandleHarvestAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.engine.HarvestAll(r.Context())
	if err != nil {
		respondServiceError(w, r, engine.IntentHarvestAll, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleCraft crafts one recipe output
// @Summary Craft a recipe
// @Tags farm
// @Accept json
// @Produce json
// @Param request body CraftRequest true "Craft request"
// @Success 201 {object} engine.CraftResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/farm/craft [post]
func (h *FarmHandler) HandleCraft(w http.ResponseWriter, r *http.Request) {
	var req CraftRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Craft"); err != nil {
		return
	}
	res, err := h.engine.Craft(r.Context(), req.RecipeID)
	if err != nil {
		respondServiceError(w, r, engine.IntentCraft, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

// HandleSell sells one unit of an item. Selling something the player does not
// hold is not an error.
// @Summary Sell one item
// @Tags farm
// @Accept json
// @Produce json
// @Param request body SellRequest true "Sell request"
// @Success 200 {object} SellResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/farm/sell [post]
func (h *FarmHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	var req SellRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell"); err != nil {
		return
	}
	sold, err := h.engine.Sell(r.Context(), req.ItemID)
	if err != nil {
		respondServiceError(w, r, engine.IntentSell, err)
		return
	}
	resp := SellResponse{Sold: sold}
	if !sold {
		resp.Message = MsgNotSold
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleFulfillOrder delivers the items of an order
// @Summary Fulfill an order
// @Tags farm
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} engine.OrderResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/farm/orders/{id}/fulfill [post]
func (h *FarmHandler) HandleFulfillOrder(w http.ResponseWriter, r *http.Request) {
	res, err := h.engine.FulfillOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, engine.IntentFulfillOrder, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleExpandLand buys the next expansion ring
// @Summary Expand the farm
// @Tags farm
// @Produce json
// @Success 200 {object} engine.ExpandResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/farm/land/expand [post]
func (h *FarmHandler) HandleExpandLand(w http.ResponseWriter, r *http.Request) {
	res, err := h.engine.ExpandLand(r.Context())
	if err != nil {
		respondServiceError(w, r, engine.IntentExpandLand, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleBuyMascot buys a mascot and equips it
// @Summary Buy a mascot
// @Tags mascots
// @Produce json
// @Param id path string true "Mascot ID"
// @Success 201 {object} engine.MascotResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/farm/mascots/{id}/buy [post]
func (h *FarmHandler) HandleBuyMascot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	res, err := h.engine.BuyMascot(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, engine.IntentBuyMascot, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

// HandleEquipMascot makes an owned mascot the active one
// @Summary Equip an owned mascot
// @Tags mascots
// @Produce json
// @Param id path string true "Mascot ID"
// @Success 200 {object} engine.MascotResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/farm/mascots/{id}/equip [post]
func (h *FarmHandler) HandleEquipMascot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	res, err := h.engine.EquipMascot(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, engine.IntentEquipMascot, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleReset starts a new game
// @Summary Start a new farm
// @Tags farm
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/farm/reset [post]
func (h *FarmHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.engine.Reset(r.Context())
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGameReset})
}

// HandleRequestTexture queues generation of the decorative forest
// @Summary Generate the forest background
// @Tags farm
// @Produce json
// @Success 202 {object} SuccessResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/farm/texture [post]
func (h *FarmHandler) HandleRequestTexture(w http.ResponseWriter, r *http.Request) {
	if h.pool == nil || h.textures == nil {
		respondError(w, http.StatusServiceUnavailable, ErrMsgTextureUnavailable)
		return
	}
	if h.engine.Snapshot().ForestTexture != "" {
		respondError(w, http.StatusConflict, ErrMsgTextureExists)
		return
	}
	if !h.pool.TryEnqueue(texture.Job{Fetcher: h.textures, Sink: h.engine}) {
		respondError(w, http.StatusServiceUnavailable, ErrMsgTextureBusy)
		return
	}
	logger.FromContext(r.Context()).Info("Forest texture requested")
	respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgTextureRequested})
}
