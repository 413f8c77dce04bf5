package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ReplaySize is how many notifications a reconnecting client can catch up on
	ReplaySize = 32
)

// KeepaliveInterval is how often to send keepalive pings
const KeepaliveInterval = 30 * time.Second

// Stream control event types. Game notifications use the event bus type names.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgSubscriberReady    = "SSE subscriber registered"
)
