package domain

import "time"

// ItemCount is a quantity of one item, used for recipe inputs and order lines
type ItemCount struct {
	ItemID string `json:"itemId"`
	Count  int    `json:"count"`
}

// Recipe turns a set of ingredients into one unit of its output item.
// Ingredient item ids are unique within a recipe.
type Recipe struct {
	ID          string        `json:"id"`
	OutputItem  string        `json:"outputItemId"`
	Inputs      []ItemCount   `json:"inputs"`
	UnlockLevel int           `json:"unlockLevel"`
	CraftTime   time.Duration `json:"craftTime"`
	XPReward    int           `json:"xpReward"`
}
