package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/logger"
	"github.com/osse101/PixelFarm_Go/internal/save"
)

// SaveRepository stores encoded game saves in PostgreSQL. It implements
// save.Store and save.Lister.
type SaveRepository struct {
	db *pgxpool.Pool
}

// NewSaveRepository creates a new save repository
func NewSaveRepository(db *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{db: db}
}

// Put upserts the save for a slot
func (r *SaveRepository) Put(ctx context.Context, slot string, data []byte) error {
	if err := save.ValidateSlot(slot); err != nil {
		return err
	}

	_, err := r.db.Exec(ctx, queryUpsertSave, slot, data)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToWriteSave, slot, err)
	}
	logger.FromContext(ctx).Debug("Save written", "slot", slot, "bytes", len(data))
	return nil
}

// Get returns the save for a slot
func (r *SaveRepository) Get(ctx context.Context, slot string) ([]byte, error) {
	if err := save.ValidateSlot(slot); err != nil {
		return nil, err
	}

	var data []byte
	err := r.db.QueryRow(ctx, querySelectSave, slot).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToReadSave, slot, err)
	}
	return data, nil
}

// List returns every slot, most recently written first
func (r *SaveRepository) List(ctx context.Context) ([]save.Summary, error) {
	rows, err := r.db.Query(ctx, queryListSaves)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSaves, err)
	}

	summaries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[save.Summary])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSaves, err)
	}
	return summaries, nil
}
