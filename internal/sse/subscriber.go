package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/PixelFarm_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every notification type to connected clients
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.forward)
	slog.Info(LogMsgSubscriberReady, "types", len(event.NotificationTypes))
}

// forward rebroadcasts the typed payload. Payloads embed the notice, so
// clients get the message text alongside the structured fields.
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	return nil
}
