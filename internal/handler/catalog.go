package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
)

// CatalogResponse lists the static game data
type CatalogResponse struct {
	Items   []domain.Item            `json:"items"`
	Recipes []domain.Recipe          `json:"recipes"`
	Mascots []domain.Mascot          `json:"mascots"`
	Events  []domain.EventDefinition `json:"events"`
}

// CatalogEntryResponse is one catalog lookup. Exactly one field is set.
type CatalogEntryResponse struct {
	Item   *domain.Item   `json:"item,omitempty"`
	Recipe *domain.Recipe `json:"recipe,omitempty"`
	Mascot *domain.Mascot `json:"mascot,omitempty"`
}

// HandleGetCatalog returns every item, recipe, mascot and event
// @Summary Get the catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/catalog [get]
func HandleGetCatalog() http.HandlerFunc {
	resp := CatalogResponse{
		Items:   catalog.Items(),
		Recipes: catalog.Recipes(),
		Mascots: catalog.Mascots(),
		Events:  catalog.Events(),
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetCatalogEntry looks up a single item, recipe or mascot by id
// @Summary Look up a catalog entry
// @Tags catalog
// @Produce json
// @Param id path string true "Item, recipe or mascot ID"
// @Success 200 {object} CatalogEntryResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/catalog/{id} [get]
func HandleGetCatalogEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if it, ok := catalog.Item(id); ok {
			respondJSON(w, http.StatusOK, CatalogEntryResponse{Item: &it})
			return
		}
		if rc, ok := catalog.Recipe(id); ok {
			respondJSON(w, http.StatusOK, CatalogEntryResponse{Recipe: &rc})
			return
		}
		if m, ok := catalog.Mascot(id); ok {
			respondJSON(w, http.StatusOK, CatalogEntryResponse{Mascot: &m})
			return
		}

		msg := fmt.Sprintf(ErrMsgCatalogEntryNotFound, id)
		if s := catalog.Suggest(id); s != "" {
			msg = fmt.Sprintf(ErrMsgDidYouMean, id, s)
		}
		respondError(w, http.StatusNotFound, msg)
	}
}
