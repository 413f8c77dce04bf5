package domain

import (
	"slices"
	"time"
)

// GameState is the root aggregate owned by the simulation engine.
// Level and UnlockedItems are projections of XP and are only written by the
// engine's projection step.
type GameState struct {
	Money          int            `json:"money"`
	XP             int            `json:"xp"`
	Level          int            `json:"level"`
	Inventory      map[string]int `json:"inventory"`
	Plots          []Plot         `json:"plots"`
	UnlockedItems  []string       `json:"unlockedItems"`
	Orders         []Order        `json:"orders"`
	OwnedMascots   []string       `json:"ownedMascots"`
	ActiveMascot   string         `json:"activeMascot,omitempty"`
	Weather        Weather        `json:"weather"`
	WeatherEndTime time.Time      `json:"weatherEndTime"`
	GameHour       float64        `json:"gameHour"`
	ExpansionLevel int            `json:"expansionLevel"`
	ActiveEvent    *ActiveEvent   `json:"activeEvent,omitempty"`
	LastSaveTime   time.Time      `json:"lastSaveTime"`
	ForestTexture  string         `json:"forestTexture,omitempty"`
}

// Clone returns a deep copy safe to hand outside the engine
func (s *GameState) Clone() *GameState {
	c := *s
	c.Inventory = make(map[string]int, len(s.Inventory))
	for k, v := range s.Inventory {
		c.Inventory[k] = v
	}
	c.Plots = slices.Clone(s.Plots)
	c.UnlockedItems = slices.Clone(s.UnlockedItems)
	c.OwnedMascots = slices.Clone(s.OwnedMascots)
	c.Orders = make([]Order, len(s.Orders))
	for i, o := range s.Orders {
		o.Items = slices.Clone(o.Items)
		c.Orders[i] = o
	}
	if s.ActiveEvent != nil {
		ev := *s.ActiveEvent
		c.ActiveEvent = &ev
	}
	return &c
}

// OwnsMascot reports whether the mascot has been bought
func (s *GameState) OwnsMascot(id string) bool {
	return slices.Contains(s.OwnedMascots, id)
}

// Count returns the inventory count for an item
func (s *GameState) Count(itemID string) int {
	return s.Inventory[itemID]
}

// HasAll reports whether the inventory covers every line
func (s *GameState) HasAll(lines []ItemCount) bool {
	for _, l := range lines {
		if s.Inventory[l.ItemID] < l.Count {
			return false
		}
	}
	return true
}

// Debit removes every line from the inventory. Callers check HasAll first.
func (s *GameState) Debit(lines []ItemCount) {
	for _, l := range lines {
		s.Inventory[l.ItemID] -= l.Count
	}
}

// Credit adds count units of an item
func (s *GameState) Credit(itemID string, count int) {
	if s.Inventory == nil {
		s.Inventory = make(map[string]int)
	}
	s.Inventory[itemID] += count
}
