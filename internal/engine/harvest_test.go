package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/event"
	"github.com/osse101/PixelFarm_Go/internal/grid"
	"github.com/osse101/PixelFarm_Go/internal/utils"
)

func TestHarvestOne_GrowthLifecycle(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, testState(), nil)

	_, err := h.engine.Plant(ctx, at(5, 5), catalog.ItemWheat, false)
	require.NoError(t, err)

	h.clock.Advance(4 * time.Second)
	_, err = h.engine.HarvestOne(ctx, at(5, 5), false)
	require.ErrorIs(t, err, domain.ErrCropNotReady)
	assert.ErrorIs(t, err, domain.ErrNotReady)
	assert.Equal(t, "Not ready yet!", h.rec.messages()[len(h.rec.messages())-1])

	h.clock.Advance(time.Second)
	res, err := h.engine.HarvestOne(ctx, at(5, 5), false)
	require.NoError(t, err)
	assert.Equal(t, []int{at(5, 5)}, res.Plots)
	assert.Equal(t, map[string]int{catalog.ItemWheat: 1}, res.Yields)
	assert.Equal(t, 2, res.XP)
	assert.Equal(t, "Harvested 1 Wheat (+2 XP)", res.Message)

	s := h.engine.Snapshot()
	assert.Equal(t, 6, s.Count(catalog.ItemWheat))
	assert.Equal(t, 2, s.XP)
	assert.True(t, s.Plots[at(5, 5)].IsEmpty())

	_, err = h.engine.HarvestOne(ctx, at(5, 5), false)
	assert.ErrorIs(t, err, domain.ErrEmptyPlot)
}

func TestHarvestOne_DragSuppressesNotReady(t *testing.T) {
	h := newHarness(t, testState(withCrop(at(5, 5), catalog.ItemWheat, t0)), nil)

	_, err := h.engine.HarvestOne(context.Background(), at(5, 5), true)
	require.ErrorIs(t, err, domain.ErrCropNotReady)
	assert.Empty(t, h.rec.types())
}

func TestHarvestOne_RedirectsToRoot(t *testing.T) {
	planted := t0.Add(-time.Hour)
	h := newHarness(t, testState(withXP(3000), withCrop(at(6, 6), catalog.ItemPumpkin, planted)), nil)

	res, err := h.engine.HarvestOne(context.Background(), at(7, 7), false)
	require.NoError(t, err)
	assert.Equal(t, []int{at(6, 6)}, res.Plots)
	assert.Equal(t, 1, res.Yields[catalog.ItemPumpkin])

	s := h.engine.Snapshot()
	for _, idx := range []int{at(6, 6), at(7, 6), at(6, 7), at(7, 7)} {
		assert.True(t, s.Plots[idx].IsEmpty(), "plot %d", idx)
	}
	assert.NoError(t, grid.Validate(s.Plots, catalog.CropFootprint))
}

func TestHarvestOne_LevelUp(t *testing.T) {
	h := newHarness(t, testState(withXP(98), withCrop(at(5, 5), catalog.ItemWheat, t0.Add(-time.Minute))), nil)

	res, err := h.engine.HarvestOne(context.Background(), at(5, 5), false)
	require.NoError(t, err)
	assert.True(t, res.LeveledUp)
	assert.Equal(t, 2, res.Level)

	assert.Equal(t, []event.Type{event.CropHarvested, event.LevelUp}, h.rec.types())
	assert.Equal(t, "Level Up! You are now level 2", h.rec.messages()[1])
	assert.Contains(t, h.engine.Snapshot().UnlockedItems, catalog.ItemCorn)
}

func TestHarvestOne_CompletesChallenge(t *testing.T) {
	planted := t0.Add(-time.Minute)
	h := newHarness(t, testState(
		withXP(100),
		withChallenge("wheat_shortage", 19, t0.Add(time.Minute)),
		withCrop(at(5, 5), catalog.ItemWheat, planted),
	), nil)

	res, err := h.engine.HarvestOne(context.Background(), at(5, 5), false)
	require.NoError(t, err)
	assert.Equal(t, "wheat_shortage", res.ChallengeCompleted)

	s := h.engine.Snapshot()
	assert.Nil(t, s.ActiveEvent)
	assert.Equal(t, 50+150, s.Money)
	assert.Equal(t, 100+2+100, s.XP)
	assert.Contains(t, h.rec.types(), event.ChallengeCompleted)
}

func TestHarvestOne_OtherItemsDoNotAdvanceChallenge(t *testing.T) {
	planted := t0.Add(-time.Minute)
	h := newHarness(t, testState(
		withXP(100),
		withChallenge("wheat_shortage", 19, t0.Add(time.Minute)),
		withCrop(at(5, 5), catalog.ItemLettuce, planted),
	), nil)

	_, err := h.engine.HarvestOne(context.Background(), at(5, 5), false)
	require.NoError(t, err)

	s := h.engine.Snapshot()
	require.NotNil(t, s.ActiveEvent)
	assert.Equal(t, 19, s.ActiveEvent.Progress)
}

func TestHarvestAll_MatchesSequentialHarvest(t *testing.T) {
	planted := t0.Add(-time.Hour)
	roots := []int{at(0, 0), at(4, 4), at(5, 5), at(2, 9), at(15, 3), at(10, 10)}
	opts := []stateOption{
		withXP(3000),
		withMoney(500),
		withExpansion(5),
		withMascot(catalog.MascotCow),
		withChallenge("wheat_shortage", 15, t0.Add(time.Minute)),
	}
	for _, r := range roots {
		opts = append(opts, withCrop(r, catalog.ItemWheat, planted))
	}
	opts = append(opts,
		withCrop(at(7, 7), catalog.ItemPumpkin, planted),
		withCrop(at(13, 13), catalog.ItemStarfruit, t0),
	)

	batch := newHarness(t, testState(opts...), utils.NewSeededRand(7))
	single := newHarness(t, testState(opts...), utils.NewSeededRand(7))
	ctx := context.Background()

	all, err := batch.engine.HarvestAll(ctx)
	require.NoError(t, err)

	expected := append(append([]int{}, roots...), at(7, 7))
	assert.ElementsMatch(t, expected, all.Plots)

	seq := 0
	for _, idx := range all.Plots {
		res, err := single.engine.HarvestOne(ctx, idx, false)
		require.NoError(t, err)
		seq += res.XP
	}

	assert.Equal(t, single.engine.Snapshot(), batch.engine.Snapshot())
	assert.Equal(t, seq, all.XP)
	assert.Nil(t, batch.engine.Snapshot().ActiveEvent)
	assert.Equal(t, "wheat_shortage", all.ChallengeCompleted)
	assert.Equal(t, catalog.ItemStarfruit, batch.engine.Snapshot().Plots[at(13, 13)].PlantedCrop)
}

func TestHarvestAll_NothingReady(t *testing.T) {
	h := newHarness(t, testState(withCrop(at(5, 5), catalog.ItemWheat, t0)), nil)

	res, err := h.engine.HarvestAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Plots)
	assert.Empty(t, h.rec.types())
}

func TestHarvest_TierYield(t *testing.T) {
	planted := t0.Add(-time.Hour)
	// tier 2 rolls 1.4; constRand{0} always takes the extra unit
	h := newHarness(t, testState(withExpansion(5), withCrop(at(3, 3), catalog.ItemWheat, planted)), constRand{f: 0})

	res, err := h.engine.HarvestOne(context.Background(), at(3, 3), false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Yields[catalog.ItemWheat])
}
