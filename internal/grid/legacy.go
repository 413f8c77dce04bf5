package grid

import (
	"fmt"

	"github.com/osse101/PixelFarm_Go/internal/domain"
)

// LegacyExpansionLevel is the smallest expansion level that keeps every
// remapped legacy cell unlocked
const LegacyExpansionLevel = 2

// IsLegacy reports whether a plot slice uses the old 12x12 layout
func IsLegacy(plots []domain.Plot) bool {
	return len(plots) == LegacySize*LegacySize
}

// TranslateLegacyIndex maps a 12x12 index onto the current grid
func TranslateLegacyIndex(index int) int {
	row, col := index/LegacySize, index%LegacySize
	return (row+LegacyOffset)*Size + col + LegacyOffset
}

// RemapLegacy copies a 12x12 save onto a fresh 18x18 lattice centred with
// LegacyOffset, translating occupiedBy references the same way. Tiers come
// from the new grid; unlock flags are derived from expansionLevel.
func RemapLegacy(old []domain.Plot, expansionLevel int) ([]domain.Plot, error) {
	if !IsLegacy(old) {
		return nil, fmt.Errorf("%w: expected %d legacy plots, got %d",
			domain.ErrInvalidSaveFormat, LegacySize*LegacySize, len(old))
	}

	plots := NewPlots(Size, expansionLevel)
	for i, p := range old {
		idx := TranslateLegacyIndex(i)
		plots[idx].PlantedCrop = p.PlantedCrop
		plots[idx].PlantTime = p.PlantTime
		plots[idx].Withered = p.Withered
		if p.IsOccupied() {
			if p.OccupiedBy < 0 || p.OccupiedBy >= len(old) {
				return nil, fmt.Errorf("%w: legacy plot %d points at %d",
					domain.ErrInvalidSaveFormat, i, p.OccupiedBy)
			}
			plots[idx].OccupiedBy = TranslateLegacyIndex(p.OccupiedBy)
		}
	}
	return plots, nil
}
