// Package sse streams game notifications to browser clients as server-sent events.
package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one frame of the stream. Game notifications carry a sequence
// number as ID so a reconnecting browser can resume with Last-Event-ID.
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client is a connected stream. EventChannel is closed when the client is
// unregistered or the hub stops.
type Client struct {
	ID           string
	EventChannel chan Event
	types        map[string]bool
}

func (c *Client) wants(eventType string) bool {
	return c.types == nil || c.types[eventType]
}

// Hub fans notifications out to clients and remembers the last few so a
// dropped connection does not lose the feed.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	seq     uint64
	recent  []Event

	queue    chan Event
	shutdown chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// OnDrop, when set, is called for every event a slow client missed
	OnDrop func(clientID, eventType string)
}

func NewHub() *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		recent:   make([]Event, 0, ReplaySize),
		queue:    make(chan Event, BroadcastBufferSize),
		shutdown: make(chan struct{}),
	}
}

func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends delivery and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.shutdown) })
	h.wg.Wait()

	h.mu.Lock()
	for id, c := range h.clients {
		close(c.EventChannel)
		delete(h.clients, id)
	}
	h.mu.Unlock()
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case ev := <-h.queue:
			h.deliver(ev)
		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) deliver(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	ev.ID = strconv.FormatUint(h.seq, 10)
	if len(h.recent) == ReplaySize {
		copy(h.recent, h.recent[1:])
		h.recent = h.recent[:ReplaySize-1]
	}
	h.recent = append(h.recent, ev)

	for _, c := range h.clients {
		if !c.wants(ev.Type) {
			continue
		}
		select {
		case c.EventChannel <- ev:
		default:
			if h.OnDrop != nil {
				h.OnDrop(c.ID, ev.Type)
			}
		}
	}
}

// Register adds a client. Empty eventTypes subscribes to everything.
func (h *Hub) Register(eventTypes []string) *Client {
	return h.RegisterAfter(eventTypes, "")
}

// RegisterAfter adds a client and queues every remembered event newer than
// lastEventID for it. Unknown or empty ids replay nothing.
func (h *Hub) RegisterAfter(eventTypes []string, lastEventID string) *Client {
	c := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		c.types = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			c.types[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if after, err := strconv.ParseUint(lastEventID, 10, 64); err == nil {
		for _, ev := range h.recent {
			if id, _ := strconv.ParseUint(ev.ID, 10, 64); id > after && c.wants(ev.Type) {
				select {
				case c.EventChannel <- ev:
				default:
				}
			}
		}
	}
	h.clients[c.ID] = c
	return c
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[clientID]; ok {
		close(c.EventChannel)
		delete(h.clients, clientID)
	}
}

// Broadcast queues an event without blocking; a backed-up hub drops it
func (h *Hub) Broadcast(eventType string, payload any) {
	ev := Event{Type: eventType, Timestamp: time.Now().UnixMilli(), Payload: payload}
	select {
	case h.queue <- ev:
	default:
		slog.Warn(LogMsgEventDropped, "type", eventType)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders one frame. Events without an ID omit the id line
// so keepalives do not move the browser's Last-Event-ID.
func FormatSSEMessage(ev Event) ([]byte, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	var out []byte
	if ev.ID != "" {
		out = fmt.Appendf(out, "id: %s\n", ev.ID)
	}
	return fmt.Appendf(out, "event: %s\ndata: %s\n\n", ev.Type, data), nil
}
