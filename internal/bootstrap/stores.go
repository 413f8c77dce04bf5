package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PixelFarm_Go/internal/config"
	"github.com/osse101/PixelFarm_Go/internal/database"
	"github.com/osse101/PixelFarm_Go/internal/database/postgres"
	"github.com/osse101/PixelFarm_Go/internal/save"
)

// SaveStore is the opened save backend plus what must be closed with it
type SaveStore struct {
	save.Store
	// DBPool and Slots are set only for the postgres backend
	DBPool *pgxpool.Pool
	Slots  save.Lister
	close  func() error
}

// Close releases the backend
func (s *SaveStore) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenSaveStore opens the configured backend and wraps it so writes to a slot
// are serialized and recent slots are cached.
func OpenSaveStore(ctx context.Context, cfg *config.Config) (*SaveStore, error) {
	out := &SaveStore{}
	var backend save.Store

	switch cfg.SaveBackend {
	case config.SaveBackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		s, err := save.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		backend, out.close = s, s.Close

	case config.SaveBackendFile:
		s, err := save.NewFileStore(cfg.SaveDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenFileStore, err)
		}
		backend = s

	case config.SaveBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		version, err := database.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
		}
		slog.Info(LogMsgMigrationsApplied, "version", version)
		repo := postgres.NewSaveRepository(pool)
		backend, out.DBPool, out.Slots = repo, pool, repo
		out.close = func() error {
			pool.Close()
			return nil
		}

	default:
		return nil, fmt.Errorf("%s %q", ErrMsgUnknownSaveBackend, cfg.SaveBackend)
	}

	out.Store = save.NewCachedStore(save.NewSerializedStore(backend), SaveCacheSize, SaveCacheTTL)
	slog.Info(LogMsgSaveStoreOpened, "backend", cfg.SaveBackend)
	return out, nil
}
