package grid

import (
	"fmt"

	"github.com/osse101/PixelFarm_Go/internal/domain"
)

// FootprintFunc resolves the footprint of a planted crop id
type FootprintFunc func(cropID string) (w, h int, ok bool)

// Validate checks the occupancy invariant over every plot: each plot is empty,
// a root, or an occupied cell pointing at a root whose footprint covers it.
func Validate(plots []domain.Plot, footprint FootprintFunc) error {
	side := SideOf(plots)
	if side == 0 {
		return fmt.Errorf("plot count %d is not a square grid", len(plots))
	}

	for i, p := range plots {
		if p.ID != i {
			return fmt.Errorf("plot %d has id %d", i, p.ID)
		}
		if p.IsRoot() && p.IsOccupied() {
			return fmt.Errorf("plot %d is both a root and occupied by %d", i, p.OccupiedBy)
		}
		if !p.IsOccupied() {
			continue
		}

		root := p.OccupiedBy
		if root < 0 || root >= len(plots) || root == i {
			return fmt.Errorf("plot %d points at invalid root %d", i, root)
		}
		if !plots[root].IsRoot() {
			return fmt.Errorf("plot %d points at %d which holds no crop", i, root)
		}
		w, h, ok := footprint(plots[root].PlantedCrop)
		if !ok {
			return fmt.Errorf("plot %d holds unknown crop %q", root, plots[root].PlantedCrop)
		}
		if !covers(root, w, h, i, side) {
			return fmt.Errorf("plot %d lies outside the footprint of root %d", i, root)
		}
	}

	for i, p := range plots {
		if !p.IsRoot() {
			continue
		}
		w, h, ok := footprint(p.PlantedCrop)
		if !ok {
			return fmt.Errorf("plot %d holds unknown crop %q", i, p.PlantedCrop)
		}
		cells, err := Footprint(i, w, h, side)
		if err != nil {
			return fmt.Errorf("plot %d: %w", i, err)
		}
		for _, idx := range cells[1:] {
			if plots[idx].OccupiedBy != i {
				return fmt.Errorf("plot %d is inside root %d but not linked to it", idx, i)
			}
		}
	}
	return nil
}

func covers(root, w, h, idx, side int) bool {
	rr, rc := root/side, root%side
	ir, ic := idx/side, idx%side
	return ir >= rr && ir < rr+h && ic >= rc && ic < rc+w
}
