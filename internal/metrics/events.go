package metrics

import (
	"context"

	"github.com/osse101/PixelFarm_Go/internal/event"
	"github.com/osse101/PixelFarm_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every notification type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	event.SubscribeAll(bus, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.HarvestPayloadV1:
		for item, n := range p.Yields {
			CropsHarvested.WithLabelValues(item).Add(float64(n))
		}
	case event.CraftPayloadV1:
		ItemsCrafted.WithLabelValues(p.ItemID).Inc()
	case event.SalePayloadV1:
		ItemsSold.WithLabelValues(p.ItemID).Inc()
		MoneyEarned.WithLabelValues(SourceSale).Add(float64(p.Price))
	case event.OrderPayloadV1:
		if evt.Type == event.OrderCompleted {
			MoneyEarned.WithLabelValues(SourceOrder).Add(float64(p.RewardMoney))
		}
	case event.ChallengePayloadV1:
		if evt.Type == event.ChallengeCompleted {
			MoneyEarned.WithLabelValues(SourceChallenge).Add(float64(p.RewardMoney))
		}
	case event.LevelUpPayloadV1:
		PlayerLevel.Set(float64(p.NewLevel))
	case event.IntentRejectedPayloadV1:
		IntentsRejected.WithLabelValues(p.Intent).Inc()
	}

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
