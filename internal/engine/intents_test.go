package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/event"
)

func TestNewGame(t *testing.T) {
	s := NewGame(constRand{f: 0}, t0)

	assert.Equal(t, 50, s.Money)
	assert.Equal(t, 5, s.Count(catalog.ItemWheat))
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 0, s.ExpansionLevel)
	assert.Equal(t, 8.0, s.GameHour)
	assert.Equal(t, domain.WeatherSunny, s.Weather)
	assert.Equal(t, t0.Add(2*time.Minute), s.WeatherEndTime)
	assert.Len(t, s.Plots, 18*18)
	assert.Contains(t, s.UnlockedItems, catalog.ItemWheat)
	assert.NotContains(t, s.UnlockedItems, catalog.ItemCorn)
}

func TestPlant_Success(t *testing.T) {
	h := newHarness(t, testState(), nil)
	ctx := context.Background()

	res, err := h.engine.Plant(ctx, at(5, 5), catalog.ItemWheat, false)
	require.NoError(t, err)
	assert.Equal(t, at(5, 5), res.PlotID)
	assert.Equal(t, t0.Add(5*time.Second), res.ReadyAt)

	s := h.engine.Snapshot()
	assert.Equal(t, 49, s.Money)
	assert.Equal(t, catalog.ItemWheat, s.Plots[at(5, 5)].PlantedCrop)
	assert.Equal(t, t0, s.Plots[at(5, 5)].PlantTime)
	assert.Equal(t, []event.Type{event.CropPlanted}, h.rec.types())
}

func TestPlant_MultiTileFootprint(t *testing.T) {
	h := newHarness(t, testState(withXP(3000), withMoney(100)), nil)

	_, err := h.engine.Plant(context.Background(), at(6, 6), catalog.ItemPumpkin, false)
	require.NoError(t, err)

	s := h.engine.Snapshot()
	assert.Equal(t, 60, s.Money)
	assert.True(t, s.Plots[at(6, 6)].IsRoot())
	for _, idx := range []int{at(7, 6), at(6, 7), at(7, 7)} {
		assert.Equal(t, at(6, 6), s.Plots[idx].OccupiedBy)
		assert.Empty(t, s.Plots[idx].PlantedCrop)
	}
}

func TestPlant_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		state  *domain.GameState
		index  int
		itemID string
		want   error
	}{
		{"negative index", testState(), -1, catalog.ItemWheat, domain.ErrOutOfBounds},
		{"index past grid", testState(), 18 * 18, catalog.ItemWheat, domain.ErrOutOfBounds},
		{"unknown item", testState(), at(5, 5), "WHEET", domain.ErrUnknownItem},
		{"product", testState(), at(5, 5), catalog.ItemBread, domain.ErrNotACrop},
		{"locked crop", testState(), at(5, 5), catalog.ItemCorn, domain.ErrItemLocked},
		{"occupied", testState(withCrop(at(5, 5), catalog.ItemWheat, t0)), at(5, 5), catalog.ItemWheat, domain.ErrSpaceOccupied},
		{"occupied cell", testState(withXP(3000), withCrop(at(5, 5), catalog.ItemPumpkin, t0)), at(6, 6), catalog.ItemWheat, domain.ErrSpaceOccupied},
		{"locked land", testState(), at(4, 4), catalog.ItemWheat, domain.ErrLandLocked},
		{"footprint into locked land", testState(withXP(3000), withMoney(100)), at(12, 5), catalog.ItemPumpkin, domain.ErrLandLocked},
		{"crosses edge", testState(withXP(3000), withMoney(100), withExpansion(5)), at(17, 17), catalog.ItemPumpkin, domain.ErrOutOfBounds},
		{"no money", testState(withMoney(0)), at(5, 5), catalog.ItemWheat, domain.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.state, nil)
			before := h.engine.Snapshot()

			res, err := h.engine.Plant(context.Background(), tt.index, tt.itemID, false)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, h.engine.Snapshot())
		})
	}
}

func TestPlant_ErrorCategories(t *testing.T) {
	h := newHarness(t, testState(withMoney(0)), nil)
	ctx := context.Background()

	_, err := h.engine.Plant(ctx, at(4, 4), catalog.ItemWheat, false)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = h.engine.Plant(ctx, at(5, 5), catalog.ItemWheat, false)
	assert.ErrorIs(t, err, domain.ErrInsufficientResource)

	_, err = h.engine.Plant(ctx, at(5, 5), "NOPE", false)
	assert.ErrorIs(t, err, domain.ErrUnknownEntity)
}

func TestPlant_DragSuppressesRejection(t *testing.T) {
	h := newHarness(t, testState(withMoney(0)), nil)
	ctx := context.Background()

	_, err := h.engine.Plant(ctx, at(5, 5), catalog.ItemWheat, true)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Empty(t, h.rec.types())

	_, err = h.engine.Plant(ctx, at(5, 5), catalog.ItemWheat, false)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, []event.Type{event.IntentRejected}, h.rec.types())
	assert.Equal(t, []string{"Not enough money for seeds!"}, h.rec.messages())
}

func TestPlant_ConcurrentSamePlot(t *testing.T) {
	h := newHarness(t, testState(), nil)
	ctx := context.Background()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := h.engine.Plant(ctx, at(5, 5), catalog.ItemWheat, true); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, 49, h.engine.Snapshot().Money)
}

func TestCraft(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		h := newHarness(t, testState(withXP(100), withInventory(map[string]int{catalog.ItemWheat: 3})), nil)

		res, err := h.engine.Craft(ctx, "r_bread")
		require.NoError(t, err)
		assert.Equal(t, catalog.ItemBread, res.ItemID)
		assert.Equal(t, 5, res.XP)
		assert.Equal(t, 2*time.Second, res.CraftTime)
		assert.Equal(t, "Crafted Bread", res.Message)

		s := h.engine.Snapshot()
		assert.Equal(t, 0, s.Count(catalog.ItemWheat))
		assert.Equal(t, 1, s.Count(catalog.ItemBread))
		assert.Equal(t, 105, s.XP)
	})

	t.Run("mascot effects", func(t *testing.T) {
		h := newHarness(t, testState(withXP(100), withMascot(catalog.MascotPig), withInventory(map[string]int{catalog.ItemWheat: 3})), nil)
		res, err := h.engine.Craft(ctx, "r_bread")
		require.NoError(t, err)
		assert.Equal(t, 6, res.XP)

		h = newHarness(t, testState(withXP(100), withMascot(catalog.MascotSheep), withInventory(map[string]int{catalog.ItemWheat: 3})), nil)
		res, err = h.engine.Craft(ctx, "r_bread")
		require.NoError(t, err)
		assert.Equal(t, 1600*time.Millisecond, res.CraftTime)
	})

	t.Run("missing ingredients changes nothing", func(t *testing.T) {
		h := newHarness(t, testState(withXP(3000), withInventory(map[string]int{
			catalog.ItemCarrot: 2,
			catalog.ItemWheat:  2,
		})), nil)
		before := h.engine.Snapshot()

		_, err := h.engine.Craft(ctx, "r_cake")
		require.ErrorIs(t, err, domain.ErrMissingIngredients)
		assert.Equal(t, before.Inventory, h.engine.Snapshot().Inventory)
		assert.Equal(t, []string{"Missing ingredients!"}, h.rec.messages())
	})

	t.Run("locked recipe", func(t *testing.T) {
		h := newHarness(t, testState(withInventory(map[string]int{catalog.ItemWheat: 3})), nil)
		_, err := h.engine.Craft(ctx, "r_bread")
		assert.ErrorIs(t, err, domain.ErrRecipeLocked)
	})

	t.Run("unknown recipe suggests", func(t *testing.T) {
		h := newHarness(t, testState(), nil)
		_, err := h.engine.Craft(ctx, "r_bred")
		require.ErrorIs(t, err, domain.ErrUnknownRecipe)
		assert.Contains(t, err.Error(), "r_bread")
	})
}

func TestSell(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, testState(), nil)

	sold, err := h.engine.Sell(ctx, catalog.ItemWheat)
	require.NoError(t, err)
	assert.True(t, sold)

	s := h.engine.Snapshot()
	assert.Equal(t, 53, s.Money)
	assert.Equal(t, 4, s.Count(catalog.ItemWheat))

	sold, err = h.engine.Sell(ctx, catalog.ItemBread)
	require.NoError(t, err)
	assert.False(t, sold)
	assert.Equal(t, s, h.engine.Snapshot())

	_, err = h.engine.Sell(ctx, "NOPE")
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
}

func TestFulfillOrder(t *testing.T) {
	ctx := context.Background()
	withOrder := func(s *domain.GameState) {
		s.Orders = []domain.Order{{
			ID:          "order_1",
			Items:       []domain.ItemCount{{ItemID: catalog.ItemWheat, Count: 3}},
			RewardMoney: 100,
			RewardXP:    20,
			ExpiresAt:   t0.Add(5 * time.Minute),
		}}
	}

	t.Run("money boost", func(t *testing.T) {
		h := newHarness(t, testState(withOrder, withMascot(catalog.MascotDog)), nil)

		res, err := h.engine.FulfillOrder(ctx, "order_1")
		require.NoError(t, err)
		assert.Equal(t, 120, res.Money)
		assert.Equal(t, 20, res.XP)
		assert.Equal(t, "Order Complete! +120G +20XP", res.Message)

		s := h.engine.Snapshot()
		assert.Equal(t, 170, s.Money)
		assert.Equal(t, 2, s.Count(catalog.ItemWheat))
		assert.Empty(t, s.Orders)
	})

	t.Run("missing items", func(t *testing.T) {
		h := newHarness(t, testState(withOrder, withInventory(map[string]int{catalog.ItemWheat: 2})), nil)
		before := h.engine.Snapshot()

		_, err := h.engine.FulfillOrder(ctx, "order_1")
		require.ErrorIs(t, err, domain.ErrMissingItems)
		assert.Equal(t, before, h.engine.Snapshot())
	})

	t.Run("unknown order", func(t *testing.T) {
		h := newHarness(t, testState(withOrder), nil)
		_, err := h.engine.FulfillOrder(ctx, "order_2")
		assert.ErrorIs(t, err, domain.ErrUnknownOrder)
	})
}

func TestExpandLand(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, testState(withMoney(1000), withCrop(at(5, 5), catalog.ItemWheat, t0)), nil)

	res, err := h.engine.ExpandLand(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExpansionLevel)
	assert.Equal(t, 1000, res.Cost)
	assert.Equal(t, 100, res.UnlockedPlots)

	s := h.engine.Snapshot()
	assert.Equal(t, 0, s.Money)
	assert.True(t, s.Plots[at(4, 4)].Unlocked)
	assert.False(t, s.Plots[at(3, 3)].Unlocked)
	assert.Equal(t, catalog.ItemWheat, s.Plots[at(5, 5)].PlantedCrop)

	_, err = h.engine.ExpandLand(ctx)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	maxed := newHarness(t, testState(withMoney(1_000_000), withExpansion(5)), nil)
	_, err = maxed.engine.ExpandLand(ctx)
	assert.ErrorIs(t, err, domain.ErrMaxExpansionReached)
}

func TestMascots(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, testState(withMoney(2000)), nil)

	res, err := h.engine.BuyMascot(ctx, catalog.MascotChicken)
	require.NoError(t, err)
	assert.True(t, res.Equipped)

	res, err = h.engine.BuyMascot(ctx, catalog.MascotCow)
	require.NoError(t, err)
	assert.False(t, res.Equipped)

	s := h.engine.Snapshot()
	assert.Equal(t, 0, s.Money)
	assert.Equal(t, catalog.MascotChicken, s.ActiveMascot)
	assert.Equal(t, []string{catalog.MascotChicken, catalog.MascotCow}, s.OwnedMascots)

	_, err = h.engine.BuyMascot(ctx, catalog.MascotChicken)
	assert.ErrorIs(t, err, domain.ErrMascotAlreadyOwned)

	_, err = h.engine.EquipMascot(ctx, catalog.MascotCow)
	require.NoError(t, err)
	assert.Equal(t, catalog.MascotCow, h.engine.Snapshot().ActiveMascot)

	// Equipping the active mascot again keeps it equipped
	res, err = h.engine.EquipMascot(ctx, catalog.MascotCow)
	require.NoError(t, err)
	assert.True(t, res.Equipped)
	assert.Equal(t, catalog.MascotCow, h.engine.Snapshot().ActiveMascot)

	_, err = h.engine.EquipMascot(ctx, catalog.MascotOwl)
	assert.ErrorIs(t, err, domain.ErrMascotNotOwned)

	_, err = h.engine.BuyMascot(ctx, "DRAGON")
	assert.ErrorIs(t, err, domain.ErrUnknownMascot)

	_, err = h.engine.BuyMascot(ctx, catalog.MascotOwl)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}
