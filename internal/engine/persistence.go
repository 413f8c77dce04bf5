package engine

import (
	"context"
	"fmt"

	"github.com/osse101/PixelFarm_Go/internal/event"
	"github.com/osse101/PixelFarm_Go/internal/logger"
	"github.com/osse101/PixelFarm_Go/internal/save"
)

// Save stamps LastSaveTime and returns the encoded snapshot
func (e *Engine) Save(ctx context.Context) ([]byte, error) {
	e.mu.Lock()
	e.state.LastSaveTime = e.clock()
	data, err := save.Encode(e.state)
	e.mu.Unlock()

	if err != nil {
		logger.FromContext(ctx).Error("Failed to encode save", "error", err)
		return nil, err
	}
	return data, nil
}

// Load validates and migrates a snapshot, reconciles it against the current
// time and only then replaces the live state. A rejected snapshot leaves the
// current state untouched.
func (e *Engine) Load(ctx context.Context, data []byte) (*Report, error) {
	loaded, err := save.Decode(data)
	if err != nil {
		return nil, e.reject(ctx, IntentLoad, err, false)
	}

	e.mu.Lock()
	now := e.clock()
	rep := Reconcile(loaded, e.weather, now)
	e.state = loaded
	e.mu.Unlock()

	logger.FromContext(ctx).Info("Game loaded",
		"away", rep.Away, "crops_ready", rep.CropsReady, "level", loaded.Level)
	e.publish(ctx, event.NewGameLoadedEvent(rep.Messages, rep.CropsReady, rep.AwayMinutes(), now))
	return &rep, nil
}

// SaveTo saves into a store slot and announces it
func (e *Engine) SaveTo(ctx context.Context, store save.Store, slot string) error {
	if err := e.writeSlot(ctx, store, slot); err != nil {
		return fmt.Errorf("failed to store save %s: %w", slot, err)
	}
	e.publish(ctx, event.NewGameSavedEvent(e.clock()))
	return nil
}

// writeSlot encodes and writes one snapshot. saveMu spans both steps so slot
// writes land in the order their snapshots were taken.
func (e *Engine) writeSlot(ctx context.Context, store save.Store, slot string) error {
	e.saveMu.Lock()
	defer e.saveMu.Unlock()

	data, err := e.Save(ctx)
	if err != nil {
		return err
	}
	return store.Put(ctx, slot, data)
}

// LoadFrom loads a store slot
func (e *Engine) LoadFrom(ctx context.Context, store save.Store, slot string) (*Report, error) {
	data, err := store.Get(ctx, slot)
	if err != nil {
		return nil, err
	}
	return e.Load(ctx, data)
}

// SetForestTexture stores the decorative background. It never touches gameplay state.
func (e *Engine) SetForestTexture(ctx context.Context, texture string) {
	e.mu.Lock()
	e.state.ForestTexture = texture
	now := e.clock()
	e.mu.Unlock()

	e.publish(ctx, event.NewTextureReadyEvent(now))
}

// ForestTextureFailed announces that the decorative background could not be made
func (e *Engine) ForestTextureFailed(ctx context.Context, err error) {
	logger.FromContext(ctx).Warn("Forest texture failed", "error", err)
	e.publish(ctx, event.NewTextureFailedEvent(e.clock()))
}
