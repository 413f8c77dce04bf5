package save

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/osse101/PixelFarm_Go/internal/catalog"
	"github.com/osse101/PixelFarm_Go/internal/domain"
	"github.com/osse101/PixelFarm_Go/internal/grid"
	"github.com/osse101/PixelFarm_Go/internal/progression"
)

// Encode serialises state as a snapshot
func Encode(state *domain.GameState) ([]byte, error) {
	data, err := json.Marshal(FromState(state))
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode validates and parses a snapshot. Older layouts are migrated, missing
// fields are defaulted and the level projection is recomputed from XP.
// The returned state has not been reconciled against the current time.
func Decode(data []byte) (*domain.GameState, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSaveFormat, err)
	}
	if !isNumber(fields["money"]) {
		return nil, fmt.Errorf("%w: money must be a number", domain.ErrInvalidSaveFormat)
	}
	if !isArray(fields["plots"]) {
		return nil, fmt.Errorf("%w: plots must be an array", domain.ErrInvalidSaveFormat)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSaveFormat, err)
	}
	return ToState(snap)
}

// Migrate rewrites a snapshot of any supported layout in the current layout
func Migrate(data []byte) ([]byte, error) {
	state, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Encode(state)
}

// ToState converts a parsed snapshot into game state
func ToState(snap Snapshot) (*domain.GameState, error) {
	if snap.Money < 0 {
		return nil, fmt.Errorf("%w: money must not be negative", domain.ErrInvalidSaveFormat)
	}
	state := &domain.GameState{
		Money:          snap.Money,
		XP:             max(snap.XP, 0),
		Inventory:      make(map[string]int, len(snap.Inventory)),
		OwnedMascots:   knownMascots(snap.OwnedMascots),
		ActiveMascot:   derefString(snap.ActiveMascot),
		Weather:        domain.Weather(snap.Weather),
		WeatherEndTime: fromMillis(snap.WeatherEndTime),
		GameHour:       catalog.StartingHour,
		LastSaveTime:   fromMillis(snap.LastSaveTime),
		ForestTexture:  derefString(snap.ForestTexture),
	}

	for id, n := range snap.Inventory {
		if n >= 0 {
			state.Inventory[id] = n
		}
	}
	if !state.Weather.Valid() {
		state.Weather = domain.WeatherSunny
		state.WeatherEndTime = fromMillis(0)
	}
	if snap.GameHour != nil && *snap.GameHour >= 0 && *snap.GameHour < 24 {
		state.GameHour = *snap.GameHour
	}
	if snap.ExpansionLevel != nil {
		state.ExpansionLevel = min(max(*snap.ExpansionLevel, 0), catalog.MaxExpansionLevel())
	}
	if state.ActiveMascot != "" && !state.OwnsMascot(state.ActiveMascot) {
		state.ActiveMascot = ""
	}

	plots, err := restorePlots(snap.Plots, &state.ExpansionLevel)
	if err != nil {
		return nil, err
	}
	state.Plots = plots

	for _, o := range snap.Orders {
		state.Orders = append(state.Orders, restoreOrder(o))
	}
	if ev := snap.ActiveEvent; ev != nil {
		if _, ok := catalog.Event(ev.EventID); ok {
			state.ActiveEvent = &domain.ActiveEvent{
				EventID:   ev.EventID,
				StartTime: fromMillis(ev.StartTime),
				EndTime:   fromMillis(ev.EndTime),
				Progress:  max(ev.Progress, 0),
			}
		}
	}

	progression.Project(state)
	return state, nil
}

// restorePlots rebuilds the lattice, remapping legacy 12x12 saves and
// promoting their expansion level so the remapped area stays unlocked
func restorePlots(saved []PlotSnapshot, expansionLevel *int) ([]domain.Plot, error) {
	plots := make([]domain.Plot, len(saved))
	for i, ps := range saved {
		p := domain.NewPlot(i, 0)
		p.PlantedCrop = derefString(ps.PlantedCrop)
		p.Withered = ps.IsWithered
		if ps.PlantTime != nil {
			p.PlantTime = fromMillis(*ps.PlantTime)
		}
		if ps.OccupiedBy != nil {
			p.OccupiedBy = *ps.OccupiedBy
		}
		plots[i] = p
	}

	switch len(plots) {
	case grid.LegacySize * grid.LegacySize:
		*expansionLevel = max(*expansionLevel, grid.LegacyExpansionLevel)
		remapped, err := grid.RemapLegacy(plots, *expansionLevel)
		if err != nil {
			return nil, err
		}
		plots = remapped
	case grid.Size * grid.Size:
		for i := range plots {
			plots[i].Tier = grid.TierOf(i, grid.Size)
		}
		grid.RefreshUnlocks(plots, *expansionLevel)
	default:
		return nil, fmt.Errorf("%w: unsupported grid of %d plots", domain.ErrInvalidSaveFormat, len(plots))
	}

	if err := grid.Validate(plots, catalog.CropFootprint); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSaveFormat, err)
	}
	return plots, nil
}

func restoreOrder(o OrderSnapshot) domain.Order {
	lines := make([]domain.ItemCount, 0, len(o.Items))
	for _, l := range o.Items {
		lines = append(lines, domain.ItemCount{ItemID: l.Item, Count: l.Count})
	}
	return domain.Order{
		ID:             o.ID,
		Items:          lines,
		RewardMoney:    o.RewardMoney,
		RewardXP:       o.RewardXP,
		ExpiresAt:      fromMillis(o.ExpiresAt),
		RequesterName:  o.RequesterName,
		RequesterQuote: o.RequesterQuote,
		Emergency:      o.IsEmergency,
	}
}

func knownMascots(ids []string) []string {
	var out []string
	for _, id := range ids {
		if _, ok := catalog.Mascot(id); ok {
			out = append(out, id)
		}
	}
	return out
}

func isNumber(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	return len(b) > 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9'))
}

func isArray(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	return len(b) > 0 && b[0] == '['
}
