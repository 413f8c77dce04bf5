package discord

import "github.com/osse101/PixelFarm_Go/internal/event"

// QueueSize bounds the messages waiting to be sent
const QueueSize = 64

const (
	ErrMsgCreateSession = "error creating Discord session"
	ErrMsgOpenSession   = "error opening Discord connection"

	LogMsgNotifierReady       = "Discord notifier subscribed"
	LogMsgNotificationSent    = "Discord notification sent"
	LogMsgNotificationError   = "Failed to send Discord notification"
	LogMsgNotificationDropped = "Discord queue full, notification dropped"
)

var prefixes = map[event.Type]string{
	event.LevelUp:            "**Level up!**",
	event.OrderSpawned:       "**New order:**",
	event.OrderCompleted:     "**Order complete:**",
	event.OrderExpired:       "**Order expired:**",
	event.ChallengeStarted:   "**Event:**",
	event.ChallengeCompleted: "**Event complete:**",
	event.ChallengeFailed:    "**Event failed:**",
	event.WeatherChanged:     "**Weather:**",
}
