// Package discord mirrors player notifications into a Discord channel.
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/PixelFarm_Go/internal/event"
)

// Sender is the part of a discordgo session the notifier uses
type Sender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts event messages to one channel. Messages are queued and
// sent from a single goroutine so publishers never wait on Discord.
type Notifier struct {
	sender    Sender
	channelID string
	skip      map[event.Type]bool
	closer    func() error

	queue     chan outgoing
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

type outgoing struct {
	eventType event.Type
	content   string
}

// Config holds the notifier configuration
type Config struct {
	Token     string
	ChannelID string
}

// New opens a bot session and returns a notifier writing to cfg.ChannelID
func New(cfg Config) (*Notifier, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateSession, err)
	}
	if err := s.Open(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenSession, err)
	}
	n := NewWithSender(s, cfg.ChannelID)
	n.closer = s.Close
	return n, nil
}

// NewWithSender builds a notifier around an existing sender and starts its
// send loop
func NewWithSender(sender Sender, channelID string) *Notifier {
	n := &Notifier{
		sender:    sender,
		channelID: channelID,
		// Too chatty for a channel
		skip: map[event.Type]bool{
			event.CropPlanted:    true,
			event.ItemSold:       true,
			event.GameSaved:      true,
			event.IntentRejected: true,
		},
		queue: make(chan outgoing, QueueSize),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go n.run()
	return n
}

// Subscribe registers the notifier for every notification type
func (n *Notifier) Subscribe(bus event.Bus) {
	event.SubscribeAll(bus, n.HandleEvent)
	slog.Info(LogMsgNotifierReady, "channel_id", n.channelID)
}

// HandleEvent queues the event message for sending. It never blocks: a full
// queue drops the message. Send failures are logged, never returned.
func (n *Notifier) HandleEvent(_ context.Context, evt event.Event) error {
	if n.skip[evt.Type] {
		return nil
	}
	msg := evt.Message()
	if msg == "" {
		return nil
	}

	select {
	case <-n.stop:
		return nil
	default:
	}
	select {
	case n.queue <- outgoing{eventType: evt.Type, content: format(evt.Type, msg)}:
	default:
		slog.Warn(LogMsgNotificationDropped, "event_type", evt.Type)
	}
	return nil
}

func (n *Notifier) run() {
	defer close(n.done)
	for {
		select {
		case msg := <-n.queue:
			n.send(msg)
		case <-n.stop:
			// Flush what was queued before Close
			for {
				select {
				case msg := <-n.queue:
					n.send(msg)
				default:
					return
				}
			}
		}
	}
}

func (n *Notifier) send(msg outgoing) {
	if _, err := n.sender.ChannelMessageSend(n.channelID, msg.content); err != nil {
		slog.Error(LogMsgNotificationError, "error", err, "event_type", msg.eventType)
		return
	}
	slog.Debug(LogMsgNotificationSent, "event_type", msg.eventType)
}

// Close stops the send loop after flushing queued messages, then closes the
// bot session if the notifier owns one. It is safe to call more than once.
func (n *Notifier) Close() error {
	var err error
	n.closeOnce.Do(func() {
		close(n.stop)
		<-n.done
		if n.closer != nil {
			err = n.closer()
		}
	})
	return err
}

func format(t event.Type, msg string) string {
	prefix, ok := prefixes[t]
	if !ok {
		return msg
	}
	return prefix + " " + strings.TrimSpace(msg)
}
