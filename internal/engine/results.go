package engine

import "time"

// Intent names used in rejection notifications and logs
const (
	IntentPlant        = "plant"
	IntentHarvest      = "harvest"
	IntentHarvestAll   = "harvest_all"
	IntentCraft        = "craft"
	IntentSell         = "sell"
	IntentFulfillOrder = "fulfill_order"
	IntentExpandLand   = "expand_land"
	IntentBuyMascot    = "buy_mascot"
	IntentEquipMascot  = "equip_mascot"
	IntentLoad         = "load"
)

// PlantResult describes a planted crop
type PlantResult struct {
	PlotID   int       `json:"plot_id"`
	ItemID   string    `json:"item_id"`
	SeedCost int       `json:"seed_cost"`
	ReadyAt  time.Time `json:"ready_at"`
}

// HarvestResult describes one harvest transition, single or batch
type HarvestResult struct {
	Plots              []int          `json:"plots"`
	Yields             map[string]int `json:"yields"`
	XP                 int            `json:"xp"`
	Level              int            `json:"level"`
	LeveledUp          bool           `json:"leveled_up"`
	ChallengeCompleted string         `json:"challenge_completed,omitempty"`
	Message            string         `json:"message,omitempty"`
}

// CraftResult describes a crafted item. CraftTime is the modifier-adjusted
// duration the presentation layer may animate.
type CraftResult struct {
	RecipeID  string        `json:"recipe_id"`
	ItemID    string        `json:"item_id"`
	XP        int           `json:"xp"`
	CraftTime time.Duration `json:"craft_time"`
	Level     int           `json:"level"`
	LeveledUp bool          `json:"leveled_up"`
	Message   string        `json:"message"`
}

// OrderResult describes a fulfilled order
type OrderResult struct {
	OrderID   string `json:"order_id"`
	Money     int    `json:"money"`
	XP        int    `json:"xp"`
	Level     int    `json:"level"`
	LeveledUp bool   `json:"leveled_up"`
	Message   string `json:"message"`
}

// ExpandResult describes a land expansion
type ExpandResult struct {
	ExpansionLevel int `json:"expansion_level"`
	Cost           int `json:"cost"`
	UnlockedPlots  int `json:"unlocked_plots"`
}

// MascotResult describes a mascot purchase or equip
type MascotResult struct {
	MascotID string `json:"mascot_id"`
	Equipped bool   `json:"equipped"`
}

// TickResult summarises what a tick changed
type TickResult struct {
	WeatherChanged   bool     `json:"weather_changed"`
	OrdersExpired    []string `json:"orders_expired,omitempty"`
	OrderSpawned     string   `json:"order_spawned,omitempty"`
	ChallengeStarted string   `json:"challenge_started,omitempty"`
	ChallengeFailed  string   `json:"challenge_failed,omitempty"`
}
