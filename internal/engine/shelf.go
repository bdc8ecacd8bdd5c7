package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/cargoforge/internal/geometry"
	"github.com/piwi3910/cargoforge/internal/model"
)

// The 2-D shelf packer is the older, flat placement strategy: cargo is
// laid out on two hold floors and the deck by footprint only, stacking
// rows ("shelves") across the ship's breadth. It ignores item height
// and category constraints, which makes it fast and occasionally better
// for flat, heavy manifests. Kept as algorithm "2d".

type shelf struct {
	y         float64 // offset across the bin's depth
	height    float64 // row depth, set by the first item in the row
	usedWidth float64
}

type shelfBin struct {
	name      string
	x, y, z   float64 // origin
	width     float64 // along ship length
	depth     float64 // along ship breadth
	usedDepth float64
	shelves   []shelf
	weight    float64
	items     int
}

// tryPlaceShelf attempts both flat orientations in existing rows first,
// then opens a new row. Returns the committed position on success.
func (b *shelfBin) tryPlaceShelf(item *model.CargoItem) (model.Position, geometry.Orientation, float64, float64, bool) {
	type flat struct {
		w, d   float64
		orient geometry.Orientation
	}
	orients := []flat{{item.Length, item.Width, geometry.OrientLWH}}
	if item.Length != item.Width {
		orients = append(orients, flat{item.Width, item.Length, geometry.OrientWLH})
	}

	for _, fo := range orients {
		for i := range b.shelves {
			sh := &b.shelves[i]
			if fo.d <= sh.height && fo.w <= b.width-sh.usedWidth {
				pos := model.Position{X: b.x + sh.usedWidth, Y: b.y + sh.y, Z: b.z}
				sh.usedWidth += fo.w
				b.weight += item.Weight
				b.items++
				return pos, fo.orient, fo.w, fo.d, true
			}
		}
		if b.usedDepth+fo.d <= b.depth {
			b.shelves = append(b.shelves, shelf{y: b.usedDepth, height: fo.d, usedWidth: fo.w})
			pos := model.Position{X: b.x, Y: b.y + b.usedDepth, Z: b.z}
			b.usedDepth += fo.d
			b.weight += item.Weight
			b.items++
			return pos, fo.orient, fo.w, fo.d, true
		}
	}
	return model.Position{}, geometry.OrientLWH, 0, 0, false
}

// placeShelf2D packs heaviest-first into two half-length holds and the
// deck, first bin that accepts wins.
func (o *Optimizer) placeShelf2D(ship *model.Ship) Result {
	result := Result{Algorithm: model.AlgorithmShelf2D}

	bins := []*shelfBin{
		{name: "Hold1", x: 0, y: 0, z: -5.0, width: ship.Length / 2, depth: ship.Width},
		{name: "Hold2", x: ship.Length / 2, y: 0, z: -5.0, width: ship.Length / 2, depth: ship.Width},
		{name: "Deck", x: 0, y: 0, z: 0, width: ship.Length, depth: ship.Width},
	}

	order := make([]int, len(ship.Cargo))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ship.Cargo[order[a]].Weight > ship.Cargo[order[b]].Weight
	})

	for _, idx := range order {
		item := &ship.Cargo[idx]
		placed := false
		for _, bin := range bins {
			pos, orient, w, d, ok := bin.tryPlaceShelf(item)
			if !ok {
				continue
			}
			item.Position = &pos
			result.Placements = append(result.Placements, Placement{
				ItemID:      item.ID,
				Bin:         bin.name,
				Position:    pos,
				Width:       w,
				Depth:       d,
				Height:      item.Height,
				Orientation: orient,
			})
			placed = true
			break
		}
		if !placed {
			result.UnplacedIDs = append(result.UnplacedIDs, item.ID)
			result.Diagnostics = append(result.Diagnostics,
				fmt.Sprintf("could not place %s (%.1fx%.1f m footprint)", item.ID, item.Length, item.Width))
			o.Logger.Warn("cargo unplaced", "item", item.ID, "algorithm", "2d")
		}
	}

	for _, b := range bins {
		result.Bins = append(result.Bins, BinSummary{
			Name:   b.name,
			Weight: b.weight,
			Items:  b.items,
		})
	}
	return result
}
