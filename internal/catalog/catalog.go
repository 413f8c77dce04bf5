// Package catalog holds the immutable definitions of items, recipes, mascots,
// timed events, the level curve and land expansion prices.
package catalog

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/PixelFarm_Go/internal/domain"
)

var (
	itemsByID   = indexBy(itemList, func(i domain.Item) string { return i.ID })
	recipesByID = indexBy(recipeList, func(r domain.Recipe) string { return r.ID })
	mascotsByID = indexBy(mascotList, func(m domain.Mascot) string { return m.ID })
	eventsByID  = indexBy(eventList, func(e domain.EventDefinition) string { return e.ID })
)

func indexBy[T any](list []T, key func(T) string) map[string]T {
	m := make(map[string]T, len(list))
	for _, v := range list {
		m[key(v)] = v
	}
	return m
}

// Item looks up an item by id
func Item(id string) (domain.Item, bool) {
	it, ok := itemsByID[id]
	return it, ok
}

// Items returns every item in display order. The slice is a copy.
func Items() []domain.Item {
	return slices.Clone(itemList)
}

// Crops returns every plantable item in display order
func Crops() []domain.Item {
	var out []domain.Item
	for _, it := range itemList {
		if it.IsCrop() {
			out = append(out, it)
		}
	}
	return out
}

// CropFootprint returns the width and height of a plantable item
func CropFootprint(id string) (w, h int, ok bool) {
	it, found := itemsByID[id]
	if !found || !it.IsCrop() {
		return 0, 0, false
	}
	w, h = it.Footprint()
	return w, h, true
}

// Recipe looks up a recipe by id
func Recipe(id string) (domain.Recipe, bool) {
	r, ok := recipesByID[id]
	return r, ok
}

// Recipes returns every recipe in unlock order. Ingredient slices are shared
// with the catalog and must not be modified.
func Recipes() []domain.Recipe {
	return slices.Clone(recipeList)
}

// Mascot looks up a mascot by id
func Mascot(id string) (domain.Mascot, bool) {
	m, ok := mascotsByID[id]
	return m, ok
}

// Mascots returns every mascot in price order
func Mascots() []domain.Mascot {
	return slices.Clone(mascotList)
}

// Event looks up an event definition by id
func Event(id string) (domain.EventDefinition, bool) {
	e, ok := eventsByID[id]
	return e, ok
}

// Events returns every event definition in unlock order
func Events() []domain.EventDefinition {
	return slices.Clone(eventList)
}

// suggestionDistance caps how far a typo may be from a real id
const suggestionDistance = 3

// Suggest returns the catalog id closest to the given (possibly misspelled) id
// across items, recipes and mascots, or "" when nothing is close enough.
func Suggest(id string) string {
	needle := strings.ToUpper(strings.TrimSpace(id))
	if needle == "" {
		return ""
	}

	best, bestDist := "", suggestionDistance+1
	consider := func(candidate string) {
		dist := levenshtein.ComputeDistance(needle, strings.ToUpper(candidate))
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	for _, it := range itemList {
		consider(it.ID)
	}
	for _, r := range recipeList {
		consider(r.ID)
	}
	for _, m := range mascotList {
		consider(m.ID)
	}
	return best
}
