package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/logger"
)

// Handler returns an HTTP handler that streams hub events. Clients may pass
// ?types=a,b to receive only those event types; a Last-Event-ID header
// replays what they missed while disconnected.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		var eventTypes []string
		if filterParam := r.URL.Query().Get("types"); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}

		ctx := r.Context()
		log := logger.FromContext(ctx)

		client := hub.RegisterAfter(eventTypes, r.Header.Get("Last-Event-ID"))
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", eventTypes)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		send := func(ev Event) bool {
			msg, err := FormatSSEMessage(ev)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err, "type", ev.Type)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		connected := Event{
			Type:      EventTypeConnected,
			Timestamp: time.Now().UnixMilli(),
			Payload: map[string]any{
				"client_id": client.ID,
				"filters":   eventTypes,
			},
		}
		if !send(connected) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-client.EventChannel:
				if !ok {
					// hub is shutting down
					return
				}
				if !send(ev) {
					return
				}

			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().UnixMilli()}) {
					return
				}
			}
		}
	}
}
