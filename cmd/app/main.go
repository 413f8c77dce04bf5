// @title						PixelFarm API
// @version					1.0
// @description				Single-player farming simulation served over HTTP.
// @BasePath					/api/v1
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						X-API-Key
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/bootstrap"
	"github.com/osse101/PixelFarm_Go/internal/config"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/engine"
	"github.com/osse101/PixelFarm_Go/internal/event"
	"github.com/osse101/PixelFarm_Go/internal/metrics"
	"github.com/osse101/PixelFarm_Go/internal/scheduler"
	"github.com/osse101/PixelFarm_Go/internal/server"
	"github.com/osse101/PixelFarm_Go/internal/sse"
	"github.com/osse101/PixelFarm_Go/internal/texture"
	"github.com/osse101/PixelFarm_Go/internal/utils"
	"github.com/osse101/PixelFarm_Go/internal/worker"
)

const (
	shutdownTimeout = 15 * time.Second
	jobQueueSize    = 64
)

func main() {
	warnings, err := config.CheckEnv()
	if err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("PixelFarm exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	store, err := bootstrap.OpenSaveStore(ctx, cfg)
	if err != nil {
		return err
	}

	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.OnDrop = func(string, string) { metrics.SSEEventsDropped.Inc() }
	hub.Start()

	notifier, err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Hub:      hub,
		Config:   cfg,
	})
	if err != nil {
		hub.Stop()
		store.Close()
		return err
	}

	rng := utils.NewRand()
	if cfg.RNGSeed != 0 {
		rng = utils.NewSeededRand(int64(cfg.RNGSeed))
	}
	eng := engine.New(bus, engine.WithRand(rng))

	// Resume the configured slot; an empty slot starts a new farm
	if _, err := eng.LoadFrom(ctx, store, cfg.SaveSlot); err != nil {
		if !errors.Is(err, domain.ErrSaveNotFound) {
			slog.Warn("Could not resume save, starting a new farm", "slot", cfg.SaveSlot, "error", err)
		}
	}

	pool := worker.NewPool(runtime.NumCPU(), jobQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.TickInterval, engine.TickJob{Engine: eng, Observe: metrics.ObserveTick})
	sched.Schedule(cfg.AutosaveInterval, engine.AutosaveJob{Engine: eng, Store: store, Slot: cfg.SaveSlot})

	deps := server.Deps{
		Engine: eng,
		Store:  store,
		Hub:    hub,
		Pool:   pool,
	}
	if store.DBPool != nil {
		deps.DBPool = store.DBPool
		deps.Slots = store.Slots
	}
	if cfg.TextureEnabled() {
		deps.Textures = texture.NewClient(cfg.TextureAPIURL, cfg.TextureAPIKey)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		SaveSlot:       cfg.SaveSlot,
	}, deps)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-stop:
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	closers := []io.Closer{store}
	if notifier != nil {
		closers = append([]io.Closer{notifier}, closers...)
	}
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Workers:   pool,
		Engine:    eng,
		Store:     store,
		SaveSlot:  cfg.SaveSlot,
		Hub:       hub,
		Closers:   closers,
	})
	return runErr
}
