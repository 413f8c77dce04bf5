package event

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// LevelUpPayloadV1 is the typed payload for level-up events
type LevelUpPayloadV1 struct {
	Notice
	OldLevel int `json:"old_level"`
	NewLevel int `json:"new_level"`
}

// CropPlantedPayloadV1 is the typed payload for planting events
type CropPlantedPayloadV1 struct {
	Notice
	PlotID   int    `json:"plot_id"`
	ItemID   string `json:"item_id"`
	SeedCost int    `json:"seed_cost"`
}

// HarvestPayloadV1 is the typed payload for a harvest or harvest-all
type HarvestPayloadV1 struct {
	Notice
	Plots  int            `json:"plots"`
	Yields map[string]int `json:"yields"`
	XP     int            `json:"xp"`
}

// CraftPayloadV1 is the typed payload for crafting events
type CraftPayloadV1 struct {
	Notice
	RecipeID    string `json:"recipe_id"`
	ItemID      string `json:"item_id"`
	XP          int    `json:"xp"`
	CraftTimeMS int64  `json:"craft_time_ms"`
}

// SalePayloadV1 is the typed payload for item sales
type SalePayloadV1 struct {
	Notice
	ItemID string `json:"item_id"`
	Price  int    `json:"price"`
}

// OrderPayloadV1 is the typed payload for order lifecycle events
type OrderPayloadV1 struct {
	Notice
	OrderID     string `json:"order_id"`
	RewardMoney int    `json:"reward_money"`
	RewardXP    int    `json:"reward_xp"`
	Emergency   bool   `json:"emergency"`
}

// ChallengePayloadV1 is the typed payload for challenge lifecycle events
type ChallengePayloadV1 struct {
	Notice
	EventID     string `json:"event_id"`
	Title       string `json:"title"`
	Progress    int    `json:"progress"`
	Target      int    `json:"target"`
	RewardMoney int    `json:"reward_money,omitempty"`
	RewardXP    int    `json:"reward_xp,omitempty"`
}

// WeatherPayloadV1 is the typed payload for weather changes
type WeatherPayloadV1 struct {
	Notice
	Weather string `json:"weather"`
	Until   int64  `json:"until"`
}

// LandPayloadV1 is the typed payload for land expansion
type LandPayloadV1 struct {
	Notice
	ExpansionLevel int `json:"expansion_level"`
	Cost           int `json:"cost"`
}

// MascotPayloadV1 is the typed payload for mascot purchases and equips
type MascotPayloadV1 struct {
	Notice
	MascotID string `json:"mascot_id"`
}

// GameLoadedPayloadV1 carries the offline summary of a load
type GameLoadedPayloadV1 struct {
	Notice
	Messages    []string `json:"messages"`
	CropsReady  int      `json:"crops_ready"`
	AwayMinutes int      `json:"away_minutes"`
}

// IntentRejectedPayloadV1 is the typed payload for failed intents
type IntentRejectedPayloadV1 struct {
	Notice
	Intent string `json:"intent"`
	Reason string `json:"reason"`
}

// NewLevelUpEvent creates a level-up event
func NewLevelUpEvent(oldLevel, newLevel int, at time.Time) Event {
	return New(LevelUp, LevelUpPayloadV1{
		Notice:   newNotice(fmt.Sprintf("Level Up! You are now level %d", newLevel), at),
		OldLevel: oldLevel,
		NewLevel: newLevel,
	})
}

// NewCropPlantedEvent creates a planting event
func NewCropPlantedEvent(plotID int, itemID, itemName string, seedCost int, at time.Time) Event {
	return New(CropPlanted, CropPlantedPayloadV1{
		Notice:   newNotice(fmt.Sprintf("Planted %s", itemName), at),
		PlotID:   plotID,
		ItemID:   itemID,
		SeedCost: seedCost,
	})
}

// NewHarvestEvent creates a harvest summary event. names maps item ids to display names.
func NewHarvestEvent(plots int, yields map[string]int, names map[string]string, xp int, at time.Time) Event {
	ids := make([]string, 0, len(yields))
	for id := range yields {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		name := names[id]
		if name == "" {
			name = id
		}
		parts = append(parts, fmt.Sprintf("%d %s", yields[id], name))
	}
	msg := fmt.Sprintf("Harvested %s (+%d XP)", strings.Join(parts, ", "), xp)
	return New(CropHarvested, HarvestPayloadV1{
		Notice: newNotice(msg, at),
		Plots:  plots,
		Yields: yields,
		XP:     xp,
	})
}

// NewCraftEvent creates a crafting event
func NewCraftEvent(recipeID, itemID, itemName string, xp int, craftTime time.Duration, at time.Time) Event {
	return New(ItemCrafted, CraftPayloadV1{
		Notice:      newNotice(fmt.Sprintf("Crafted %s", itemName), at),
		RecipeID:    recipeID,
		ItemID:      itemID,
		XP:          xp,
		CraftTimeMS: craftTime.Milliseconds(),
	})
}

// NewSaleEvent creates an item sold event
func NewSaleEvent(itemID, itemName string, price int, at time.Time) Event {
	return New(ItemSold, SalePayloadV1{
		Notice: newNotice(fmt.Sprintf("Sold %s for %dG", itemName, price), at),
		ItemID: itemID,
		Price:  price,
	})
}

// NewOrderSpawnedEvent creates a new-order event
func NewOrderSpawnedEvent(orderID, requester string, money, xp int, emergency bool, at time.Time) Event {
	msg := fmt.Sprintf("New order from %s", requester)
	if emergency {
		msg = fmt.Sprintf("Emergency order from %s!", requester)
	}
	return New(OrderSpawned, OrderPayloadV1{
		Notice:      newNotice(msg, at),
		OrderID:     orderID,
		RewardMoney: money,
		RewardXP:    xp,
		Emergency:   emergency,
	})
}

// NewOrderCompletedEvent creates an order fulfilled event
func NewOrderCompletedEvent(orderID string, money, xp int, emergency bool, at time.Time) Event {
	return New(OrderCompleted, OrderPayloadV1{
		Notice:      newNotice(fmt.Sprintf("Order Complete! +%dG +%dXP", money, xp), at),
		OrderID:     orderID,
		RewardMoney: money,
		RewardXP:    xp,
		Emergency:   emergency,
	})
}

// NewOrderExpiredEvent creates an order expiry event
func NewOrderExpiredEvent(orderID, requester string, emergency bool, at time.Time) Event {
	return New(OrderExpired, OrderPayloadV1{
		Notice:    newNotice(fmt.Sprintf("%s's order expired", requester), at),
		OrderID:   orderID,
		Emergency: emergency,
	})
}

// NewChallengeStartedEvent creates a challenge start event
func NewChallengeStartedEvent(eventID, title string, target int, at time.Time) Event {
	return New(ChallengeStarted, ChallengePayloadV1{
		Notice:  newNotice(fmt.Sprintf("Event started: %s", title), at),
		EventID: eventID,
		Title:   title,
		Target:  target,
	})
}

// NewChallengeCompletedEvent creates a challenge completion event
func NewChallengeCompletedEvent(eventID, title string, progress, target, money, xp int, at time.Time) Event {
	return New(ChallengeCompleted, ChallengePayloadV1{
		Notice:      newNotice(fmt.Sprintf("Event complete: %s! +%dG +%dXP", title, money, xp), at),
		EventID:     eventID,
		Title:       title,
		Progress:    progress,
		Target:      target,
		RewardMoney: money,
		RewardXP:    xp,
	})
}

// NewChallengeFailedEvent creates a challenge failure event
func NewChallengeFailedEvent(eventID, title string, progress, target int, at time.Time) Event {
	return New(ChallengeFailed, ChallengePayloadV1{
		Notice:   newNotice(fmt.Sprintf("Event failed: %s", title), at),
		EventID:  eventID,
		Title:    title,
		Progress: progress,
		Target:   target,
	})
}

// NewWeatherChangedEvent creates a weather change event
func NewWeatherChangedEvent(weather, displayName string, until time.Time, at time.Time) Event {
	return New(WeatherChanged, WeatherPayloadV1{
		Notice:  newNotice(fmt.Sprintf("The weather turned %s", strings.ToLower(displayName)), at),
		Weather: weather,
		Until:   until.UnixMilli(),
	})
}

// NewLandExpandedEvent creates a land expansion event
func NewLandExpandedEvent(level, cost int, at time.Time) Event {
	return New(LandExpanded, LandPayloadV1{
		Notice:         newNotice(fmt.Sprintf("Land expanded to level %d", level), at),
		ExpansionLevel: level,
		Cost:           cost,
	})
}

// NewMascotBoughtEvent creates a mascot purchase event
func NewMascotBoughtEvent(mascotID, name string, at time.Time) Event {
	return New(MascotBought, MascotPayloadV1{
		Notice:   newNotice(fmt.Sprintf("%s joined your farm!", name), at),
		MascotID: mascotID,
	})
}

// NewMascotEquippedEvent creates a mascot equip event
func NewMascotEquippedEvent(mascotID, name string, at time.Time) Event {
	return New(MascotEquipped, MascotPayloadV1{
		Notice:   newNotice(fmt.Sprintf("%s is now helping out", name), at),
		MascotID: mascotID,
	})
}

// NewGameLoadedEvent creates the offline summary event published after a load
func NewGameLoadedEvent(messages []string, cropsReady, awayMinutes int, at time.Time) Event {
	msg := "Game loaded"
	if len(messages) > 0 {
		msg = strings.Join(messages, " ")
	}
	return New(GameLoaded, GameLoadedPayloadV1{
		Notice:      newNotice(msg, at),
		Messages:    messages,
		CropsReady:  cropsReady,
		AwayMinutes: awayMinutes,
	})
}

// NewGameSavedEvent creates a save confirmation event
func NewGameSavedEvent(at time.Time) Event {
	return New(GameSaved, newNotice("Game saved", at))
}

// NewIntentRejectedEvent creates a failed intent event
func NewIntentRejectedEvent(intent, message, reason string, at time.Time) Event {
	return New(IntentRejected, IntentRejectedPayloadV1{
		Notice: newNotice(message, at),
		Intent: intent,
		Reason: reason,
	})
}

// NewTextureReadyEvent creates a texture success event
func NewTextureReadyEvent(at time.Time) Event {
	return New(TextureReady, newNotice("Forest grown!", at))
}

// NewTextureFailedEvent creates a texture failure event
func NewTextureFailedEvent(at time.Time) Event {
	return New(TextureFailed, newNotice("Failed to grow forest", at))
}
