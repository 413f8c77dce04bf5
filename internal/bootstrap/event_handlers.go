package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/PixelFarm_Go/internal/config"
	"github.com/osse101/PixelFarm_Go/internal/discord"
	"github.com/osse101/PixelFarm_Go/internal/event"
	"github.com/osse101/PixelFarm_Go/internal/metrics"
	"github.com/osse101/PixelFarm_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
	Config   *config.Config
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event counters)
// - SSE subscriber (pushes notifications to connected clients)
// - Discord notifier, when configured
//
// The returned notifier is nil when Discord is disabled.
func RegisterEventHandlers(deps EventHandlerDependencies) (*discord.Notifier, error) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	if !deps.Config.DiscordEnabled() {
		slog.Info(LogMsgDiscordDisabled)
		return nil, nil
	}

	notifier, err := discord.New(discord.Config{
		Token:     deps.Config.DiscordToken,
		ChannelID: deps.Config.DiscordChannelID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedStartDiscord, err)
	}
	notifier.Subscribe(deps.EventBus)
	return notifier, nil
}
