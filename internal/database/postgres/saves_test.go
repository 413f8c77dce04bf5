package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/engine"
	"github.com/osse101/PixelFarm_Go/internal/save"
	"github.com/osse101/PixelFarm_Go/internal/utils"
)

func encodedGame(t *testing.T, money int) []byte {
	t.Helper()
	state := engine.NewGame(utils.NewSeededRand(1), time.UnixMilli(1_700_000_000_000))
	state.Money = money
	data, err := save.Encode(state)
	require.NoError(t, err)
	return data
}

func TestSaveRepository_PutGet(t *testing.T) {
	requireDatabase(t)
	ctx := context.Background()
	repo := NewSaveRepository(testPool)

	first := encodedGame(t, 50)
	require.NoError(t, repo.Put(ctx, "put-get", first))

	got, err := repo.Get(ctx, "put-get")
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(got))

	second := encodedGame(t, 1234)
	require.NoError(t, repo.Put(ctx, "put-get", second))

	got, err = repo.Get(ctx, "put-get")
	require.NoError(t, err)
	loaded, err := save.Decode(got)
	require.NoError(t, err)
	assert.Equal(t, 1234, loaded.Money)
}

func TestSaveRepository_Missing(t *testing.T) {
	requireDatabase(t)

	_, err := NewSaveRepository(testPool).Get(context.Background(), "never-written")
	assert.ErrorIs(t, err, domain.ErrSaveNotFound)
}

func TestSaveRepository_RejectsBadSlot(t *testing.T) {
	requireDatabase(t)

	err := NewSaveRepository(testPool).Put(context.Background(), "../escape", []byte(`{}`))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSaveRepository_List(t *testing.T) {
	requireDatabase(t)
	ctx := context.Background()
	repo := NewSaveRepository(testPool)

	require.NoError(t, repo.Put(ctx, "list-a", encodedGame(t, 10)))
	require.NoError(t, repo.Put(ctx, "list-b", encodedGame(t, 20)))

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	bySlot := make(map[string]save.Summary)
	for _, s := range summaries {
		bySlot[s.Slot] = s
	}
	require.Contains(t, bySlot, "list-a")
	require.Contains(t, bySlot, "list-b")
	assert.Equal(t, 20, bySlot["list-b"].Money)
	assert.Equal(t, 1, bySlot["list-b"].Level)
}

func TestSaveRepository_ImplementsStore(t *testing.T) {
	var _ save.Store = (*SaveRepository)(nil)
	var _ save.Lister = (*SaveRepository)(nil)
}
