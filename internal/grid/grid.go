// Package grid maintains the plot lattice: footprint placement and clearing for
// multi-tile crops, concentric land tiers and the legacy 12x12 remap.
package grid

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/PixelFarm_Go/internal/domain"
)

const (
	// Size is the side length of the current grid
	Size = 18
	// LegacySize is the side length of saves written before the 18x18 grid
	LegacySize = 12
	// LegacyOffset is the row and column shift applied to legacy cells
	LegacyOffset = (Size - LegacySize) / 2

	// MaxTier is the outermost ring
	MaxTier = 5
	// centerSide is the side length of the tier 0 box
	centerSide = 8
)

// TierOf returns the concentric ring of index on a gridSize x gridSize grid.
// Ring 0 is the centre 8x8 box; each further ring grows the box by one cell per
// side; everything outside ring MaxTier-1 is MaxTier.
func TierOf(index, gridSize int) int {
	x, y := index%gridSize, index/gridSize
	lo := (gridSize - centerSide) / 2
	hi := lo + centerSide - 1

	d := max(lo-x, x-hi, lo-y, y-hi, 0)
	return min(d, MaxTier)
}

// SideOf returns the side length of a square plot slice, or 0 if it is not square
func SideOf(plots []domain.Plot) int {
	side := int(math.Sqrt(float64(len(plots))))
	if side*side != len(plots) {
		return 0
	}
	return side
}

// NewPlots builds an empty gridSize x gridSize lattice unlocked up to expansionLevel
func NewPlots(gridSize, expansionLevel int) []domain.Plot {
	plots := make([]domain.Plot, gridSize*gridSize)
	for i := range plots {
		plots[i] = domain.NewPlot(i, TierOf(i, gridSize))
		plots[i].Unlocked = plots[i].Tier <= expansionLevel
	}
	return plots
}

// RefreshUnlocks re-derives every unlocked flag from the plot's fixed tier.
// Crop and occupancy state is left untouched.
func RefreshUnlocks(plots []domain.Plot, expansionLevel int) {
	for i := range plots {
		plots[i].Unlocked = plots[i].Tier <= expansionLevel
	}
}

// Footprint returns the indexes covered by a w x h crop rooted at root, root first.
// It returns an error if any covered cell would fall outside the grid.
func Footprint(root, w, h, gridSize int) ([]int, error) {
	if root < 0 || root >= gridSize*gridSize {
		return nil, fmt.Errorf("%w: index %d", domain.ErrOutOfBounds, root)
	}
	row, col := root/gridSize, root%gridSize
	if col+w > gridSize || row+h > gridSize {
		return nil, fmt.Errorf("%w: %dx%d crop at %d crosses the edge", domain.ErrOutOfBounds, w, h, root)
	}

	cells := make([]int, 0, w*h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			cells = append(cells, root+r*gridSize+c)
		}
	}
	return cells, nil
}

// Check validates placing a w x h crop at root against the current plots.
// It has no side effects.
func Check(root, w, h int, plots []domain.Plot) error {
	cells, err := Footprint(root, w, h, SideOf(plots))
	if err != nil {
		return err
	}
	for _, idx := range cells {
		if !plots[idx].IsEmpty() {
			return fmt.Errorf("%w: plot %d", domain.ErrSpaceOccupied, idx)
		}
	}
	for _, idx := range cells {
		if !plots[idx].Unlocked {
			return fmt.Errorf("%w: plot %d", domain.ErrLandLocked, idx)
		}
	}
	return nil
}

// CanPlace reports whether Check succeeds
func CanPlace(root, w, h int, plots []domain.Plot) bool {
	return Check(root, w, h, plots) == nil
}

// Place plants cropID at root and points every other covered cell at root.
// It re-validates first and leaves plots untouched on error.
func Place(root int, cropID string, w, h int, plantedAt time.Time, plots []domain.Plot) error {
	if err := Check(root, w, h, plots); err != nil {
		return err
	}
	cells, _ := Footprint(root, w, h, SideOf(plots))

	plots[root].PlantedCrop = cropID
	plots[root].PlantTime = plantedAt
	plots[root].Withered = false
	for _, idx := range cells[1:] {
		plots[idx].OccupiedBy = root
	}
	return nil
}

// Clear empties the root and every covered cell that still points at it
func Clear(root, w, h int, plots []domain.Plot) {
	side := SideOf(plots)
	if root < 0 || root >= len(plots) {
		return
	}
	plots[root].Reset()

	row, col := root/side, root%side
	for r := 0; r < h && row+r < side; r++ {
		for c := 0; c < w && col+c < side; c++ {
			idx := root + r*side + c
			if idx != root && plots[idx].OccupiedBy == root {
				plots[idx].Reset()
			}
		}
	}
}

// RootOf redirects an occupied cell to the root of its crop. Roots and empty
// plots return themselves. Redirection is a single hop since only roots are
// referenced.
func RootOf(index int, plots []domain.Plot) int {
	if index < 0 || index >= len(plots) {
		return index
	}
	if plots[index].IsOccupied() {
		return plots[index].OccupiedBy
	}
	return index
}
