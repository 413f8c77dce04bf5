package domain

import "time"

// NoRoot marks a plot that is not covered by another plot's footprint
const NoRoot = -1

// Plot is a single grid cell. Exactly one of these holds:
//   - empty: no crop, OccupiedBy == NoRoot
//   - root: PlantedCrop set, OccupiedBy == NoRoot
//   - occupied: no crop, OccupiedBy is the index of a root
type Plot struct {
	ID          int       `json:"id"`
	PlantedCrop string    `json:"plantedCrop,omitempty"`
	PlantTime   time.Time `json:"plantTime"`
	Withered    bool      `json:"isWithered"`
	OccupiedBy  int       `json:"occupiedBy"`
	Tier        int       `json:"tier"`
	Unlocked    bool      `json:"isUnlocked"`
}

// NewPlot returns an empty, locked plot
func NewPlot(id, tier int) Plot {
	return Plot{ID: id, OccupiedBy: NoRoot, Tier: tier}
}

// IsEmpty reports whether the plot holds nothing
func (p Plot) IsEmpty() bool {
	return p.PlantedCrop == "" && p.OccupiedBy == NoRoot
}

// IsRoot reports whether the plot holds a crop
func (p Plot) IsRoot() bool {
	return p.PlantedCrop != ""
}

// IsOccupied reports whether the plot is covered by another plot's crop
func (p Plot) IsOccupied() bool {
	return p.OccupiedBy != NoRoot
}

// Reset returns the plot to the empty state, keeping geometry and unlock
func (p *Plot) Reset() {
	p.PlantedCrop = ""
	p.PlantTime = time.Time{}
	p.Withered = false
	p.OccupiedBy = NoRoot
}
