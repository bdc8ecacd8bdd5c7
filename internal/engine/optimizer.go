// Package engine places cargo items into ship compartments. The main
// strategy is a 3-D guillotine bin-packer with a best-fit heuristic; a
// 2-D shelf packer is kept as an alternate, and "auto" runs both and
// keeps the better plan.
package engine

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/piwi3910/cargoforge/internal/constraint"
	"github.com/piwi3910/cargoforge/internal/geometry"
	"github.com/piwi3910/cargoforge/internal/model"
)

// Placement records one committed item: where it went and the oriented
// footprint it occupies there.
type Placement struct {
	ItemID      string               `json:"item_id"`
	Bin         string               `json:"bin"`
	Position    model.Position       `json:"position"`
	Width       float64              `json:"width"`
	Depth       float64              `json:"depth"`
	Height      float64              `json:"height"`
	Orientation geometry.Orientation `json:"orientation"`
}

// BinSummary reports per-bin utilization after a run.
type BinSummary struct {
	Name      string  `json:"name"`
	Weight    float64 `json:"weight_kg"`
	MaxWeight float64 `json:"max_weight_kg"`
	Items     int     `json:"items"`
}

// Utilization returns the weight usage as a percentage.
func (b BinSummary) Utilization() float64 {
	if b.MaxWeight <= 0 {
		return 0
	}
	return b.Weight / b.MaxWeight * 100.0
}

// Result holds the outcome of one placement run. Failure is data: items
// that could not be placed are listed, never raised.
type Result struct {
	Algorithm   model.Algorithm `json:"algorithm"`
	Placements  []Placement     `json:"placements"`
	UnplacedIDs []string        `json:"unplaced_ids,omitempty"`
	Bins        []BinSummary    `json:"bins"`
	Diagnostics []string        `json:"diagnostics,omitempty"`
}

// PlacedCount returns the number of committed items.
func (r Result) PlacedCount() int {
	return len(r.Placements)
}

// UnplacedCount returns the number of items that found no position.
func (r Result) UnplacedCount() int {
	return len(r.UnplacedIDs)
}

// PlacedWeight sums the weight committed into all bins.
func (r Result) PlacedWeight() float64 {
	var total float64
	for _, b := range r.Bins {
		total += b.Weight
	}
	return total
}

// Optimizer runs cargo placement for one ship at a time. State is local
// to each Optimize call, so a single Optimizer is safe to reuse across
// manifests.
type Optimizer struct {
	Settings model.StowSettings
	Logger   *slog.Logger

	validator constraint.Validator
}

// New builds an optimizer with the given settings.
func New(settings model.StowSettings) *Optimizer {
	return &Optimizer{
		Settings:  settings,
		Logger:    slog.Default(),
		validator: constraint.NewValidator(settings),
	}
}

// Optimize places every manifest item and writes its position, or leaves
// it nil when no bin, space and orientation passes the constraints.
// Unplaced items are diagnostics, not errors; the run always completes.
func (o *Optimizer) Optimize(ship *model.Ship) Result {
	switch o.Settings.Algorithm {
	case model.AlgorithmShelf2D:
		return o.placeShelf2D(ship)
	case model.AlgorithmAuto:
		return o.placeAuto(ship)
	default:
		return o.placeGuillotine3D(ship)
	}
}

// candidate is the best (bin, space, orientation) found so far.
type candidate struct {
	bin    int
	space  int
	orient geometry.Orientation
	volume float64
	notes  []string
}

// placeGuillotine3D is the primary algorithm: sort by volume descending,
// then best-fit each item into the smallest free space that admits any
// orientation and passes validation.
func (o *Optimizer) placeGuillotine3D(ship *model.Ship) Result {
	result := Result{Algorithm: model.AlgorithmGuillotine3D}
	bins := buildBins(ship, o.Settings)

	// Largest first reduces fragmentation. The sort is stable over an
	// index permutation so the manifest order itself is untouched and
	// ties resolve by original position.
	order := make([]int, len(ship.Cargo))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ship.Cargo[order[a]].Volume() > ship.Cargo[order[b]].Volume()
	})

	for _, idx := range order {
		item := &ship.Cargo[idx]
		best, found := o.findBestFit(ship, bins, item)
		if !found {
			result.UnplacedIDs = append(result.UnplacedIDs, item.ID)
			diag := fmt.Sprintf("could not place %s (%.1fx%.1fx%.1f m, %.0f kg)",
				item.ID, item.Length, item.Width, item.Height, item.Weight)
			result.Diagnostics = append(result.Diagnostics, diag)
			o.Logger.Warn("cargo unplaced", "item", item.ID, "weight_kg", item.Weight)
			continue
		}

		bin := bins[best.bin]
		space := bin.removeSpace(best.space)
		w, d, h := best.orient.Apply(item.Length, item.Width, item.Height)

		item.Position = &model.Position{X: space.X, Y: space.Y, Z: space.Z}
		bin.CurrentWeight += item.Weight
		bin.Items++

		if diag := bin.addResiduals(space.Split(w, d, h)); diag != "" {
			result.Diagnostics = append(result.Diagnostics, diag)
			o.Logger.Warn("free-space cap reached", "bin", bin.Name)
		}

		result.Placements = append(result.Placements, Placement{
			ItemID:      item.ID,
			Bin:         bin.Name,
			Position:    *item.Position,
			Width:       w,
			Depth:       d,
			Height:      h,
			Orientation: best.orient,
		})
		result.Diagnostics = append(result.Diagnostics, best.notes...)
	}

	for _, b := range bins {
		result.Bins = append(result.Bins, BinSummary{
			Name:      b.Name,
			Weight:    b.CurrentWeight,
			MaxWeight: b.MaxWeight,
			Items:     b.Items,
		})
	}
	return result
}

// findBestFit scans every bin, free space and orientation for the item
// and returns the candidate whose containing space has the smallest
// volume. The validator runs once per (bin, space) pair, before the
// orientation loop; constraint outcomes are orientation-independent in
// this design and must stay that way for compatibility.
func (o *Optimizer) findBestFit(ship *model.Ship, bins []*Bin, item *model.CargoItem) (candidate, bool) {
	best := candidate{volume: math.Inf(1)}
	found := false

	for bi, bin := range bins {
		if bin.CurrentWeight+item.Weight > bin.MaxWeight {
			continue
		}
		state := constraint.BinState{
			Name:          bin.Name,
			Deck:          bin.Deck,
			CurrentWeight: bin.CurrentWeight,
			MaxWeight:     bin.MaxWeight,
		}
		for si, space := range bin.Spaces {
			check := o.validator.CheckPlacement(ship, item, state, space)
			if !check.OK {
				continue
			}
			for _, orient := range geometry.Orientations {
				w, d, h := orient.Apply(item.Length, item.Width, item.Height)
				if !space.Fits(w, d, h) {
					continue
				}
				if vol := space.Volume(); vol < best.volume {
					best = candidate{bin: bi, space: si, orient: orient, volume: vol, notes: check.Notes}
					found = true
				}
			}
		}
	}
	return best, found
}
