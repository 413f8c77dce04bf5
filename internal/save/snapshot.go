// Package save converts game state to and from the persisted snapshot format
// and stores snapshots in named slots.
package save

import (
	"time"

	"github.com/osse101/PixelFarm_Go/internal/domain"
)

// Snapshot is the persisted form of a game. Field names and millisecond
// timestamps match saves written by earlier versions of the game.
type Snapshot struct {
	Money          int               `json:"money"`
	XP             int               `json:"xp"`
	Level          int               `json:"level"`
	Inventory      map[string]int    `json:"inventory"`
	Plots          []PlotSnapshot    `json:"plots"`
	UnlockedItems  []string          `json:"unlockedItems"`
	Orders         []OrderSnapshot   `json:"orders"`
	OwnedMascots   []string          `json:"ownedMascots"`
	ActiveMascot   *string           `json:"activeMascot"`
	Weather        string            `json:"weather,omitempty"`
	WeatherEndTime int64             `json:"weatherEndTime,omitempty"`
	GameHour       *float64          `json:"gameHour,omitempty"`
	ExpansionLevel *int              `json:"expansionLevel,omitempty"`
	ActiveEvent    *ActiveEventEntry `json:"activeEvent"`
	LastSaveTime   int64             `json:"lastSaveTime"`
	ForestTexture  *string           `json:"forestTexture"`
}

// PlotSnapshot is one persisted grid cell
type PlotSnapshot struct {
	ID          int     `json:"id"`
	PlantedCrop *string `json:"plantedCrop"`
	PlantTime   *int64  `json:"plantTime"`
	IsWithered  bool    `json:"isWithered"`
	OccupiedBy  *int    `json:"occupiedBy"`
	Tier        int     `json:"tier"`
	IsUnlocked  bool    `json:"isUnlocked"`
}

// OrderLine is one persisted order requirement
type OrderLine struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// OrderSnapshot is one persisted market order
type OrderSnapshot struct {
	ID             string      `json:"id"`
	Items          []OrderLine `json:"items"`
	RewardMoney    int         `json:"rewardMoney"`
	RewardXP       int         `json:"rewardXp"`
	ExpiresAt      int64       `json:"expiresAt"`
	RequesterName  string      `json:"requesterName,omitempty"`
	RequesterQuote string      `json:"requesterQuote,omitempty"`
	IsEmergency    bool        `json:"isEmergency,omitempty"`
}

// ActiveEventEntry is the persisted running challenge
type ActiveEventEntry struct {
	EventID   string `json:"eventId"`
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime"`
	Progress  int    `json:"progress"`
}

// FromState builds the snapshot of state
func FromState(state *domain.GameState) Snapshot {
	hour := state.GameHour
	expansion := state.ExpansionLevel

	snap := Snapshot{
		Money:          state.Money,
		XP:             state.XP,
		Level:          state.Level,
		Inventory:      make(map[string]int, len(state.Inventory)),
		Plots:          make([]PlotSnapshot, len(state.Plots)),
		UnlockedItems:  append([]string{}, state.UnlockedItems...),
		Orders:         make([]OrderSnapshot, len(state.Orders)),
		OwnedMascots:   append([]string{}, state.OwnedMascots...),
		ActiveMascot:   optString(state.ActiveMascot),
		Weather:        string(state.Weather),
		WeatherEndTime: toMillis(state.WeatherEndTime),
		GameHour:       &hour,
		ExpansionLevel: &expansion,
		LastSaveTime:   toMillis(state.LastSaveTime),
		ForestTexture:  optString(state.ForestTexture),
	}

	for k, v := range state.Inventory {
		snap.Inventory[k] = v
	}

	for i, p := range state.Plots {
		ps := PlotSnapshot{
			ID:          p.ID,
			PlantedCrop: optString(p.PlantedCrop),
			IsWithered:  p.Withered,
			Tier:        p.Tier,
			IsUnlocked:  p.Unlocked,
		}
		if !p.PlantTime.IsZero() {
			ms := p.PlantTime.UnixMilli()
			ps.PlantTime = &ms
		}
		if p.IsOccupied() {
			root := p.OccupiedBy
			ps.OccupiedBy = &root
		}
		snap.Plots[i] = ps
	}

	for i, o := range state.Orders {
		lines := make([]OrderLine, len(o.Items))
		for j, l := range o.Items {
			lines[j] = OrderLine{Item: l.ItemID, Count: l.Count}
		}
		snap.Orders[i] = OrderSnapshot{
			ID:             o.ID,
			Items:          lines,
			RewardMoney:    o.RewardMoney,
			RewardXP:       o.RewardXP,
			ExpiresAt:      toMillis(o.ExpiresAt),
			RequesterName:  o.RequesterName,
			RequesterQuote: o.RequesterQuote,
			IsEmergency:    o.Emergency,
		}
	}

	if ev := state.ActiveEvent; ev != nil {
		snap.ActiveEvent = &ActiveEventEntry{
			EventID:   ev.EventID,
			StartTime: toMillis(ev.StartTime),
			EndTime:   toMillis(ev.EndTime),
			Progress:  ev.Progress,
		}
	}
	return snap
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
