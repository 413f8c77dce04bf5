package engine

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/event"
	"github.com/osse101/PixelFarm_Go/internal/grid"
	"github.com/osse101/PixelFarm_Go/internal/progression"
)

// Plant sows itemID with its footprint rooted at index and pays the seed cost.
// drag marks one cell of a paint gesture; its failures are not announced.
func (e *Engine) Plant(ctx context.Context, index int, itemID string, drag bool) (*PlantResult, error) {
	e.mu.Lock()
	now := e.clock()
	res, events, err := e.plant(index, itemID, now)
	e.mu.Unlock()

	if err := e.commit(ctx, IntentPlant, drag, events, err); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) plant(index int, itemID string, now time.Time) (*PlantResult, []event.Event, error) {
	s := e.state
	if index < 0 || index >= len(s.Plots) {
		return nil, nil, fmt.Errorf("%w: index %d", domain.ErrOutOfBounds, index)
	}
	item, ok := catalog.Item(itemID)
	if !ok {
		return nil, nil, unknown(domain.ErrUnknownItem, itemID)
	}
	if !item.IsCrop() {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNotACrop, itemID)
	}
	if !progression.IsUnlocked(item.UnlockLevel, s.Level) {
		return nil, nil, fmt.Errorf("%w: %s unlocks at level %d", domain.ErrItemLocked, itemID, item.UnlockLevel)
	}
	w, h := item.Footprint()
	if err := grid.Check(index, w, h, s.Plots); err != nil {
		return nil, nil, err
	}
	if s.Money < item.SeedCost {
		return nil, nil, fmt.Errorf("%w: seeds cost %d, have %d", domain.ErrInsufficientFunds, item.SeedCost, s.Money)
	}

	if err := grid.Place(index, item.ID, w, h, now, s.Plots); err != nil {
		return nil, nil, err
	}
	s.Money -= item.SeedCost

	res := &PlantResult{
		PlotID:   index,
		ItemID:   item.ID,
		SeedCost: item.SeedCost,
		ReadyAt:  e.resolver().ReadyAt(item, now),
	}
	return res, []event.Event{event.NewCropPlantedEvent(index, item.ID, item.Name, item.SeedCost, now)}, nil
}

// Craft consumes a recipe's ingredients and produces one unit of its output
func (e *Engine) Craft(ctx context.Context, recipeID string) (*CraftResult, error) {
	e.mu.Lock()
	now := e.clock()
	res, events, err := e.craft(recipeID, now)
	e.mu.Unlock()

	if err := e.commit(ctx, IntentCraft, false, events, err); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) craft(recipeID string, now time.Time) (*CraftResult, []event.Event, error) {
	s := e.state
	recipe, ok := catalog.Recipe(recipeID)
	if !ok {
		return nil, nil, unknown(domain.ErrUnknownRecipe, recipeID)
	}
	if !progression.IsUnlocked(recipe.UnlockLevel, s.Level) {
		return nil, nil, fmt.Errorf("%w: %s unlocks at level %d", domain.ErrRecipeLocked, recipeID, recipe.UnlockLevel)
	}
	if !s.HasAll(recipe.Inputs) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrMissingIngredients, recipeID)
	}

	s.Debit(recipe.Inputs)
	s.Credit(recipe.OutputItem, 1)
	xp, levelUp := e.grantXP(recipe.XPReward, now)

	output, _ := catalog.Item(recipe.OutputItem)
	craftTime := e.resolver().CraftTime(recipe)
	crafted := event.NewCraftEvent(recipe.ID, output.ID, output.Name, xp, craftTime, now)

	res := &CraftResult{
		RecipeID:  recipe.ID,
		ItemID:    output.ID,
		XP:        xp,
		CraftTime: craftTime,
		Level:     s.Level,
		LeveledUp: levelUp != nil,
		Message:   crafted.Message(),
	}
	return res, withLevelUp([]event.Event{crafted}, levelUp), nil
}

// Sell sells one unit of itemID. Selling an item the player does not hold is
// a silent no-op reported as false.
func (e *Engine) Sell(ctx context.Context, itemID string) (bool, error) {
	e.mu.Lock()
	now := e.clock()
	sold, events, err := e.sell(itemID, now)
	e.mu.Unlock()

	if err := e.commit(ctx, IntentSell, false, events, err); err != nil {
		return false, err
	}
	return sold, nil
}

func (e *Engine) sell(itemID string, now time.Time) (bool, []event.Event, error) {
	item, ok := catalog.Item(itemID)
	if !ok {
		return false, nil, unknown(domain.ErrUnknownItem, itemID)
	}
	if e.state.Count(itemID) <= 0 {
		return false, nil, nil
	}
	e.state.Inventory[itemID]--
	e.state.Money += item.SellPrice
	return true, []event.Event{event.NewSaleEvent(item.ID, item.Name, item.SellPrice, now)}, nil
}

// FulfillOrder hands over an order's items for its modifier-adjusted reward
func (e *Engine) FulfillOrder(ctx context.Context, orderID string) (*OrderResult, error) {
	e.mu.Lock()
	now := e.clock()
	res, events, err := e.fulfillOrder(orderID, now)
	e.mu.Unlock()

	if err := e.commit(ctx, IntentFulfillOrder, false, events, err); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) fulfillOrder(orderID string, now time.Time) (*OrderResult, []event.Event, error) {
	s := e.state
	idx := slices.IndexFunc(s.Orders, func(o domain.Order) bool { return o.ID == orderID })
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownOrder, orderID)
	}
	o := s.Orders[idx]
	if !s.HasAll(o.Items) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrMissingItems, orderID)
	}

	s.Debit(o.Items)
	money := e.resolver().OrderMoney(o.RewardMoney)
	s.Money += money
	xp, levelUp := e.grantXP(o.RewardXP, now)
	s.Orders = slices.Delete(s.Orders, idx, idx+1)

	completed := event.NewOrderCompletedEvent(o.ID, money, xp, o.Emergency, now)
	res := &OrderResult{
		OrderID:   o.ID,
		Money:     money,
		XP:        xp,
		Level:     s.Level,
		LeveledUp: levelUp != nil,
		Message:   completed.Message(),
	}
	return res, withLevelUp([]event.Event{completed}, levelUp), nil
}

// ExpandLand buys the next land ring and unlocks its plots
func (e *Engine) ExpandLand(ctx context.Context) (*ExpandResult, error) {
	e.mu.Lock()
	now := e.clock()
	res, events, err := e.expandLand(now)
	e.mu.Unlock()

	if err := e.commit(ctx, IntentExpandLand, false, events, err); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) expandLand(now time.Time) (*ExpandResult, []event.Event, error) {
	s := e.state
	cost, ok := catalog.ExpansionCost(s.ExpansionLevel)
	if !ok {
		return nil, nil, fmt.Errorf("%w: level %d", domain.ErrMaxExpansionReached, s.ExpansionLevel)
	}
	if s.Money < cost {
		return nil, nil, fmt.Errorf("%w: expansion costs %d, have %d", domain.ErrInsufficientFunds, cost, s.Money)
	}

	s.Money -= cost
	s.ExpansionLevel++
	grid.RefreshUnlocks(s.Plots, s.ExpansionLevel)

	unlocked := 0
	for _, p := range s.Plots {
		if p.Unlocked {
			unlocked++
		}
	}
	res := &ExpandResult{ExpansionLevel: s.ExpansionLevel, Cost: cost, UnlockedPlots: unlocked}
	return res, []event.Event{event.NewLandExpandedEvent(s.ExpansionLevel, cost, now)}, nil
}

// BuyMascot purchases a mascot, equipping it when none is active
func (e *Engine) BuyMascot(ctx context.Context, mascotID string) (*MascotResult, error) {
	e.mu.Lock()
	now := e.clock()
	res, events, err := e.buyMascot(mascotID, now)
	e.mu.Unlock()

	if err := e.commit(ctx, IntentBuyMascot, false, events, err); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) buyMascot(mascotID string, now time.Time) (*MascotResult, []event.Event, error) {
	s := e.state
	m, ok := catalog.Mascot(mascotID)
	if !ok {
		return nil, nil, unknown(domain.ErrUnknownMascot, mascotID)
	}
	if s.OwnsMascot(m.ID) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrMascotAlreadyOwned, m.ID)
	}
	if s.Money < m.Price {
		return nil, nil, fmt.Errorf("%w: %s costs %d, have %d", domain.ErrInsufficientFunds, m.ID, m.Price, s.Money)
	}

	s.Money -= m.Price
	s.OwnedMascots = append(s.OwnedMascots, m.ID)
	events := []event.Event{event.NewMascotBoughtEvent(m.ID, m.Name, now)}

	res := &MascotResult{MascotID: m.ID}
	if s.ActiveMascot == "" {
		s.ActiveMascot = m.ID
		res.Equipped = true
		events = append(events, event.NewMascotEquippedEvent(m.ID, m.Name, now))
	}
	return res, events, nil
}

// EquipMascot makes an owned mascot the active one
func (e *Engine) EquipMascot(ctx context.Context, mascotID string) (*MascotResult, error) {
	e.mu.Lock()
	now := e.clock()
	res, events, err := e.equipMascot(mascotID, now)
	e.mu.Unlock()

	if err := e.commit(ctx, IntentEquipMascot, false, events, err); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) equipMascot(mascotID string, now time.Time) (*MascotResult, []event.Event, error) {
	m, ok := catalog.Mascot(mascotID)
	if !ok {
		return nil, nil, unknown(domain.ErrUnknownMascot, mascotID)
	}
	if !e.state.OwnsMascot(m.ID) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrMascotNotOwned, m.ID)
	}
	e.state.ActiveMascot = m.ID
	return &MascotResult{MascotID: m.ID, Equipped: true}, []event.Event{event.NewMascotEquippedEvent(m.ID, m.Name, now)}, nil
}

// unknown wraps an unknown-entity error with a close catalog id when there is one
func unknown(err error, id string) error {
	if hint := catalog.Suggest(id); hint != "" && hint != id {
		return fmt.Errorf("%w: %s (did you mean %s?)", err, id, hint)
	}
	return fmt.Errorf("%w: %s", err, id)
}

func withLevelUp(events []event.Event, levelUp *event.Event) []event.Event {
	if levelUp != nil {
		events = append(events, *levelUp)
	}
	return events
}
