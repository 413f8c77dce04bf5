package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/engine"
	"github.com/osse101/PixelFarm_Go/internal/save"
	"github.com/osse101/PixelFarm_Go/internal/utils"
	"github.com/osse101/PixelFarm_Go/internal/worker"
)

// centerPlot is unlocked in every new game
const centerPlot = 6*18 + 6

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type farmFixture struct {
	engine  *engine.Engine
	clock   *testClock
	handler *FarmHandler
	router  http.Handler
}

func newFarmFixture(t *testing.T) *farmFixture {
	t.Helper()
	clock := &testClock{now: time.UnixMilli(1_700_000_000_000)}
	eng := engine.New(nil, engine.WithRand(utils.NewSeededRand(7)), engine.WithClock(clock.Now))
	store, err := save.NewFileStore(t.TempDir())
	require.NoError(t, err)

	h := NewFarmHandler(eng, store, "main")
	return &farmFixture{engine: eng, clock: clock, handler: h, router: newTestRouter(h)}
}

func newTestRouter(h *FarmHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/catalog", HandleGetCatalog())
	r.Get("/catalog/{id}", HandleGetCatalogEntry())
	r.Route("/farm", func(r chi.Router) {
		r.Get("/state", h.HandleGetState)
		r.Post("/plant", h.HandlePlant)
		r.Post("/harvest", h.HandleHarvest)
		r.Post("/harvest-all", h.HandleHarvestAll)
		r.Post("/craft", h.HandleCraft)
		r.Post("/sell", h.HandleSell)
		r.Post("/orders/{id}/fulfill", h.HandleFulfillOrder)
		r.Post("/land/expand", h.HandleExpandLand)
		r.Post("/mascots/{id}/buy", h.HandleBuyMascot)
		r.Post("/mascots/{id}/equip", h.HandleEquipMascot)
		r.Post("/reset", h.HandleReset)
		r.Post("/texture", h.HandleRequestTexture)
		r.Post("/save", h.HandleSave)
		r.Post("/load", h.HandleLoad)
		r.Get("/export", h.HandleExport)
		r.Post("/import", h.HandleImport)
	})
	return r
}

func (f *farmFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestPlantAndHarvest(t *testing.T) {
	f := newFarmFixture(t)

	w := f.do(t, http.MethodPost, "/farm/plant", PlantRequest{PlotID: centerPlot, ItemID: catalog.ItemWheat})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var planted engine.PlantResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &planted))
	assert.Equal(t, centerPlot, planted.PlotID)
	assert.Equal(t, 49, f.engine.Snapshot().Money)

	w = f.do(t, http.MethodPost, "/farm/harvest", HarvestRequest{PlotID: centerPlot})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Not ready yet!", decodeError(t, w).Error)

	f.clock.Advance(time.Hour)
	w = f.do(t, http.MethodPost, "/farm/harvest", HarvestRequest{PlotID: centerPlot})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var harvested engine.HarvestResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &harvested))
	assert.Equal(t, []int{centerPlot}, harvested.Plots)
	assert.Positive(t, harvested.Yields[catalog.ItemWheat])
}

func TestHarvestAll_NothingReady(t *testing.T) {
	f := newFarmFixture(t)

	w := f.do(t, http.MethodPost, "/farm/harvest-all", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIntentErrors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		wantStatus int
		wantError  string
	}{
		{"plant on locked land", http.MethodPost, "/farm/plant", PlantRequest{PlotID: 0, ItemID: catalog.ItemWheat}, http.StatusBadRequest, "That land is still locked!"},
		{"plant unknown crop", http.MethodPost, "/farm/plant", PlantRequest{PlotID: centerPlot, ItemID: "NOPE"}, http.StatusNotFound, ""},
		{"plant malformed body", http.MethodPost, "/farm/plant", "{", http.StatusBadRequest, ErrMsgInvalidRequest},
		{"plant missing item", http.MethodPost, "/farm/plant", `{"plot_id":1}`, http.StatusBadRequest, ErrMsgInvalidRequestSummary},
		{"harvest empty plot", http.MethodPost, "/farm/harvest", HarvestRequest{PlotID: centerPlot}, http.StatusBadRequest, ""},
		{"craft locked recipe", http.MethodPost, "/farm/craft", CraftRequest{RecipeID: "r_bread"}, http.StatusBadRequest, "Reach a higher level to unlock this!"},
		{"craft unknown recipe", http.MethodPost, "/farm/craft", CraftRequest{RecipeID: "r_nope"}, http.StatusNotFound, ""},
		{"sell unknown item", http.MethodPost, "/farm/sell", SellRequest{ItemID: "NOPE"}, http.StatusNotFound, ""},
		{"fulfill unknown order", http.MethodPost, "/farm/orders/missing/fulfill", nil, http.StatusNotFound, ""},
		{"expand without money", http.MethodPost, "/farm/land/expand", nil, http.StatusConflict, "Not enough money!"},
		{"buy mascot without money", http.MethodPost, "/farm/mascots/CHICKEN/buy", nil, http.StatusConflict, "Not enough money!"},
		{"buy unknown mascot", http.MethodPost, "/farm/mascots/DRAGON/buy", nil, http.StatusNotFound, ""},
		{"buy invalid mascot id", http.MethodPost, "/farm/mascots/bad-id/buy", nil, http.StatusBadRequest, ErrMsgInvalidRequestSummary},
		{"equip unowned mascot", http.MethodPost, "/farm/mascots/CHICKEN/equip", nil, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFarmFixture(t)
			before := f.engine.Snapshot()

			w := f.do(t, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, w).Error)
			}
			assert.Equal(t, before, f.engine.Snapshot(), "rejected intents leave the state untouched")
		})
	}
}

func TestHandleSell(t *testing.T) {
	f := newFarmFixture(t)

	w := f.do(t, http.MethodPost, "/farm/sell", SellRequest{ItemID: catalog.ItemWheat})
	require.Equal(t, http.StatusOK, w.Code)
	var resp SellResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Sold)
	assert.Equal(t, 53, f.engine.Snapshot().Money)

	w = f.do(t, http.MethodPost, "/farm/sell", SellRequest{ItemID: catalog.ItemBread})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Sold)
	assert.Equal(t, MsgNotSold, resp.Message)
}

func TestHandleReset(t *testing.T) {
	f := newFarmFixture(t)
	f.do(t, http.MethodPost, "/farm/sell", SellRequest{ItemID: catalog.ItemWheat})

	w := f.do(t, http.MethodPost, "/farm/reset", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, f.engine.Snapshot().Money)
	assert.Equal(t, 5, f.engine.Snapshot().Count(catalog.ItemWheat))
}

func TestHandleGetState(t *testing.T) {
	f := newFarmFixture(t)

	w := f.do(t, http.MethodGet, "/farm/state", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var state domain.GameState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, 50, state.Money)
	assert.Equal(t, 1, state.Level)
	assert.Len(t, state.Plots, 18*18)
}

func TestSaveAndLoadSlots(t *testing.T) {
	f := newFarmFixture(t)

	w := f.do(t, http.MethodPost, "/farm/save", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	f.do(t, http.MethodPost, "/farm/sell", SellRequest{ItemID: catalog.ItemWheat})
	require.Equal(t, 53, f.engine.Snapshot().Money)

	f.clock.Advance(5 * time.Minute)
	w = f.do(t, http.MethodPost, "/farm/load", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp LoadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.AwayMinutes)
	assert.Contains(t, resp.Messages, "You were away for 5 minutes.")
	assert.Equal(t, 50, f.engine.Snapshot().Money)

	w = f.do(t, http.MethodPost, "/farm/load", SlotRequest{Slot: "other"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPost, "/farm/save", SlotRequest{Slot: "../etc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportImport(t *testing.T) {
	f := newFarmFixture(t)

	w := f.do(t, http.MethodGet, "/farm/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	exported := w.Body.Bytes()

	var snap save.Snapshot
	require.NoError(t, json.Unmarshal(exported, &snap))

	f.do(t, http.MethodPost, "/farm/sell", SellRequest{ItemID: catalog.ItemWheat})
	w = f.do(t, http.MethodPost, "/farm/import", exported)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 50, f.engine.Snapshot().Money)

	t.Run("malformed save keeps state", func(t *testing.T) {
		before := f.engine.Snapshot()
		w := f.do(t, http.MethodPost, "/farm/import", `{"money":"lots","plots":[]}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "Invalid save file", decodeError(t, w).Error)
		assert.Equal(t, before, f.engine.Snapshot())
	})

	t.Run("oversized save", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/farm/import", strings.Repeat(" ", MaxSaveBytes+1))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

type syncPool struct {
	accept bool
	jobs   int
}

func (p *syncPool) TryEnqueue(job worker.Job) bool {
	if !p.accept {
		return false
	}
	p.jobs++
	_ = job.Process(context.Background())
	return true
}

type staticFetcher string

func (s staticFetcher) Fetch(context.Context) (string, error) { return string(s), nil }

func TestHandleRequestTexture(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		f := newFarmFixture(t)
		w := f.do(t, http.MethodPost, "/farm/texture", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, ErrMsgTextureUnavailable, decodeError(t, w).Error)
	})

	t.Run("queue full", func(t *testing.T) {
		f := newFarmFixture(t)
		f.handler.WithTextures(&syncPool{accept: false}, staticFetcher("data:image/png;base64,AA=="))
		w := f.do(t, http.MethodPost, "/farm/texture", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, ErrMsgTextureBusy, decodeError(t, w).Error)
	})

	t.Run("generates once", func(t *testing.T) {
		f := newFarmFixture(t)
		pool := &syncPool{accept: true}
		f.handler.WithTextures(pool, staticFetcher("data:image/png;base64,AA=="))

		w := f.do(t, http.MethodPost, "/farm/texture", nil)
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "data:image/png;base64,AA==", f.engine.Snapshot().ForestTexture)

		w = f.do(t, http.MethodPost, "/farm/texture", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 1, pool.jobs)
	})
}

func TestCatalogEndpoints(t *testing.T) {
	f := newFarmFixture(t)

	w := f.do(t, http.MethodGet, "/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all.Items, len(catalog.Items()))
	assert.Len(t, all.Mascots, 6)

	tests := []struct {
		name       string
		id         string
		wantStatus int
		check      func(t *testing.T, body []byte)
	}{
		{"item", catalog.ItemWheat, http.StatusOK, func(t *testing.T, body []byte) {
			var resp CatalogEntryResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			require.NotNil(t, resp.Item)
			assert.Equal(t, "Wheat", resp.Item.Name)
		}},
		{"recipe", "r_bread", http.StatusOK, func(t *testing.T, body []byte) {
			var resp CatalogEntryResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			require.NotNil(t, resp.Recipe)
			assert.Equal(t, catalog.ItemBread, resp.Recipe.OutputItem)
		}},
		{"mascot", catalog.MascotCow, http.StatusOK, func(t *testing.T, body []byte) {
			var resp CatalogEntryResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			require.NotNil(t, resp.Mascot)
		}},
		{"typo suggests", "WHAET", http.StatusNotFound, func(t *testing.T, body []byte) {
			assert.Contains(t, string(body), "Did you mean WHEAT?")
		}},
		{"no suggestion", "XYZZYXYZZY", http.StatusNotFound, func(t *testing.T, body []byte) {
			assert.NotContains(t, string(body), "Did you mean")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodGet, "/catalog/"+tt.id, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			tt.check(t, w.Body.Bytes())
		})
	}
}

type fakeLister struct {
	slots []save.Summary
	err   error
}

func (f fakeLister) List(context.Context) ([]save.Summary, error) { return f.slots, f.err }

func TestHandleListSaves(t *testing.T) {
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lister   fakeLister
		wantCode int
		wantBody string
	}{
		{"slots", fakeLister{slots: []save.Summary{{Slot: "main", Level: 3, Money: 420, UpdatedAt: updated}}}, http.StatusOK,
			`[{"slot":"main","level":3,"money":420,"updated_at":"2026-03-01T12:00:00Z"}]`},
		{"empty", fakeLister{}, http.StatusOK, `[]`},
		{"backend down", fakeLister{err: assert.AnError}, http.StatusInternalServerError, `{"error":"Failed to list saves"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleListSaves(tt.lister).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/saves", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
