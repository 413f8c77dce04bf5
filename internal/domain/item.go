package domain

import "time"

// ItemKind distinguishes plantable crops from crafted products
type ItemKind string

const (
	ItemKindCrop    ItemKind = "CROP"
	ItemKindProduct ItemKind = "PRODUCT"
)

// Item is an immutable catalog entry. Crop-only fields are zero for products.
type Item struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Kind        ItemKind      `json:"type"`
	SellPrice   int           `json:"sellPrice"`
	UnlockLevel int           `json:"unlockLevel"`
	SeedCost    int           `json:"seedCost,omitempty"`
	GrowthTime  time.Duration `json:"growthTime,omitempty"`
	XPReward    int           `json:"xpReward,omitempty"`
	Width       int           `json:"width,omitempty"`
	Height      int           `json:"height,omitempty"`
}

// IsCrop reports whether the item can be planted
func (i Item) IsCrop() bool {
	return i.Kind == ItemKindCrop
}

// Footprint returns the crop's width and height in plots, defaulting to 1x1
func (i Item) Footprint() (w, h int) {
	w, h = i.Width, i.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
