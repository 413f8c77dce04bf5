package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. Every notification the simulation emits carries one of
// these types.
//
// Event types follow the pattern: <entity>.<action> (e.g., "crop.harvested")
const (
	// EventTypeLevelUp is published when an XP grant crosses a level threshold
	EventTypeLevelUp = "player.level_up"

	// EventTypeCropPlanted is published when a crop is placed on the grid
	EventTypeCropPlanted = "crop.planted"

	// EventTypeCropHarvested is published with the summary of a harvest or harvest-all
	EventTypeCropHarvested = "crop.harvested"

	// EventTypeItemCrafted is published when a recipe produces its output
	EventTypeItemCrafted = "item.crafted"

	// EventTypeItemSold is published when one unit is sold
	EventTypeItemSold = "item.sold"

	EventTypeOrderSpawned   = "order.spawned"
	EventTypeOrderCompleted = "order.completed"
	EventTypeOrderExpired   = "order.expired"

	EventTypeChallengeStarted   = "challenge.started"
	EventTypeChallengeCompleted = "challenge.completed"
	EventTypeChallengeFailed    = "challenge.failed"

	// EventTypeWeatherChanged is published when the weather state is re-rolled
	EventTypeWeatherChanged = "weather.changed"

	EventTypeLandExpanded   = "land.expanded"
	EventTypeMascotBought   = "mascot.bought"
	EventTypeMascotEquipped = "mascot.equipped"

	// EventTypeGameLoaded carries the offline summary produced while loading a save
	EventTypeGameLoaded = "game.loaded"
	EventTypeGameSaved  = "game.saved"

	// EventTypeIntentRejected is published when an intent fails outside a drag gesture
	EventTypeIntentRejected = "intent.rejected"

	EventTypeTextureReady  = "texture.ready"
	EventTypeTextureFailed = "texture.failed"
)
