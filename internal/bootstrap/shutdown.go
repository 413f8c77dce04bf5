package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/PixelFarm_Go/internal/engine"
	"github.com/osse101/PixelFarm_Go/internal/save"
	"github.com/osse101/PixelFarm_Go/internal/server"
	"github.com/osse101/PixelFarm_Go/internal/sse"
)

type stopper interface {
	Stop()
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler stopper
	Workers   stopper
	Engine    *engine.Engine
	Store     save.Store
	SaveSlot  string
	Hub       *sse.Hub
	// Closers run last, in order
	Closers []io.Closer
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the order that keeps the save consistent:
// 1. HTTP server (stop accepting new intents)
// 2. Scheduler and worker pool (no tick or autosave in flight)
// 3. Final save of the engine state
// 4. SSE hub and remaining closers
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Workers != nil {
		c.Workers.Stop()
	}

	if c.Engine != nil && c.Store != nil {
		job := engine.AutosaveJob{Engine: c.Engine, Store: c.Store, Slot: c.SaveSlot}
		if err := job.Process(ctx); err != nil {
			slog.Error(LogMsgFinalSaveFailed, "error", err, "slot", c.SaveSlot)
		} else {
			slog.Info(LogMsgFinalSaveWritten, "slot", c.SaveSlot)
		}
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	for _, closer := range c.Closers {
		if closer == nil {
			continue
		}
		if err := closer.Close(); err != nil {
			slog.Error(LogMsgCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
