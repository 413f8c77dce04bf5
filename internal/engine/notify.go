package engine

import (
	"context"
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/event"
	"github.com/osse101/PixelFarm_Go/internal/logger"
)

// commit publishes the outcome of an intent. It must be called after mu is released.
func (e *Engine) commit(ctx context.Context, intent string, drag bool, events []event.Event, err error) error {
	if err != nil {
		return e.reject(ctx, intent, err, drag)
	}
	e.publish(ctx, events...)
	return nil
}

// reject logs a failed intent and tells the player why, unless the intent was
// one step of a drag gesture
func (e *Engine) reject(ctx context.Context, intent string, err error, drag bool) error {
	logger.FromContext(ctx).Debug("Intent rejected", "intent", intent, "error", err, "drag", drag)
	if !drag {
		e.publish(ctx, event.NewIntentRejectedEvent(intent, RejectionMessage(intent, err), err.Error(), e.clock()))
	}
	return err
}

// RejectionMessage renders a failed intent for the player
func RejectionMessage(intent string, err error) string {
	switch {
	case errors.Is(err, domain.ErrCropNotReady):
		return "Not ready yet!"
	case errors.Is(err, domain.ErrSpaceOccupied), errors.Is(err, domain.ErrOutOfBounds):
		return "Not enough space!"
	case errors.Is(err, domain.ErrLandLocked):
		return "That land is still locked!"
	case errors.Is(err, domain.ErrInsufficientFunds) && intent == IntentPlant:
		return "Not enough money for seeds!"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Not enough money!"
	case errors.Is(err, domain.ErrMissingIngredients):
		return "Missing ingredients!"
	case errors.Is(err, domain.ErrMissingItems):
		return "Missing items for order!"
	case errors.Is(err, domain.ErrItemLocked), errors.Is(err, domain.ErrRecipeLocked):
		return "Reach a higher level to unlock this!"
	case errors.Is(err, domain.ErrMaxExpansionReached):
		return "Your farm can't grow any bigger!"
	case errors.Is(err, domain.ErrMascotAlreadyOwned):
		return "You already own this mascot!"
	case errors.Is(err, domain.ErrMalformedSave):
		return "Invalid save file"
	default:
		return capitalize(err.Error())
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
