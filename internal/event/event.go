package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event is one game notification. Payload is one of the *PayloadV1 types.
type Event struct {
	Version string `json:"version"`
	Type    Type   `json:"type"`
	Payload any    `json:"payload"`
}

// Notification event types
const (
	LevelUp            Type = domain.EventTypeLevelUp
	CropPlanted        Type = domain.EventTypeCropPlanted
	CropHarvested      Type = domain.EventTypeCropHarvested
	ItemCrafted        Type = domain.EventTypeItemCrafted
	ItemSold           Type = domain.EventTypeItemSold
	OrderSpawned       Type = domain.EventTypeOrderSpawned
	OrderCompleted     Type = domain.EventTypeOrderCompleted
	OrderExpired       Type = domain.EventTypeOrderExpired
	ChallengeStarted   Type = domain.EventTypeChallengeStarted
	ChallengeCompleted Type = domain.EventTypeChallengeCompleted
	ChallengeFailed    Type = domain.EventTypeChallengeFailed
	WeatherChanged     Type = domain.EventTypeWeatherChanged
	LandExpanded       Type = domain.EventTypeLandExpanded
	MascotBought       Type = domain.EventTypeMascotBought
	MascotEquipped     Type = domain.EventTypeMascotEquipped
	GameLoaded         Type = domain.EventTypeGameLoaded
	GameSaved          Type = domain.EventTypeGameSaved
	IntentRejected     Type = domain.EventTypeIntentRejected
	TextureReady       Type = domain.EventTypeTextureReady
	TextureFailed      Type = domain.EventTypeTextureFailed
)

// NotificationTypes lists every type that carries player-facing text
var NotificationTypes = []Type{
	LevelUp, CropPlanted, CropHarvested, ItemCrafted, ItemSold,
	OrderSpawned, OrderCompleted, OrderExpired,
	ChallengeStarted, ChallengeCompleted, ChallengeFailed,
	WeatherChanged, LandExpanded, MascotBought, MascotEquipped,
	GameLoaded, GameSaved, IntentRejected, TextureReady, TextureFailed,
}

// Notice is the player-facing part shared by every payload
type Notice struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// NoticeText returns the message to show the player
func (n Notice) NoticeText() string { return n.Message }

type noticer interface {
	NoticeText() string
}

// Message returns the player-facing text of an event, or "" if it has none
func (e Event) Message() string {
	if n, ok := e.Payload.(noticer); ok {
		return n.NoticeText()
	}
	return ""
}

func newNotice(msg string, at time.Time) Notice {
	return Notice{Message: msg, Timestamp: at.UnixMilli()}
}

// New wraps a payload in a versioned event
func New(t Type, payload any) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

type Handler func(ctx context.Context, event Event) error

// Bus carries engine notifications to the outer surfaces
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus delivers synchronously, in subscription order, on the
// publisher's goroutine. A failing handler does not stop the others.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler for the event's type and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf(handlerErrorFormat, event.Type, errors.Join(errs...))
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes one handler to every notification type
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range NotificationTypes {
		bus.Subscribe(t, handler)
	}
}
