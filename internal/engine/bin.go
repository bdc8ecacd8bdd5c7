package engine

import (
	"fmt"

	"github.com/piwi3910/cargoforge/internal/geometry"
	"github.com/piwi3910/cargoforge/internal/model"
)

// Bin is a cargo compartment with free-space tracking. Bins live only
// for the duration of one placement run.
type Bin struct {
	Name   string
	Deck   bool
	X      float64
	Y      float64
	Z      float64
	Width  float64
	Depth  float64
	Height float64

	MaxWeight     float64 // kg
	CurrentWeight float64 // kg
	Items         int

	// Free spaces only; a space is removed when an item is placed into
	// it and its guillotine residuals are appended. Order is creation
	// order, which the best-fit tie-break depends on.
	Spaces []geometry.Space

	maxSpaces  int
	capReached bool
}

// addResiduals appends split residuals unless the soft cap would be
// exceeded. Hitting the cap drops the residuals with a diagnostic and
// the run continues; later items may simply fail to place in this bin.
func (b *Bin) addResiduals(residuals []geometry.Space) (diag string) {
	if b.maxSpaces > 0 && len(b.Spaces) >= b.maxSpaces-3 {
		if !b.capReached {
			b.capReached = true
			return fmt.Sprintf("bin %s reached its free-space cap (%d), dropping further splits", b.Name, b.maxSpaces)
		}
		return ""
	}
	b.Spaces = append(b.Spaces, residuals...)
	return ""
}

// removeSpace deletes the space at index i preserving order, so the
// remaining free list still iterates in creation order.
func (b *Bin) removeSpace(i int) geometry.Space {
	s := b.Spaces[i]
	b.Spaces = append(b.Spaces[:i], b.Spaces[i+1:]...)
	return s
}

// Utilization returns the bin's weight usage as a percentage.
func (b *Bin) Utilization() float64 {
	if b.MaxWeight <= 0 {
		return 0
	}
	return b.CurrentWeight / b.MaxWeight * 100.0
}

// buildBins constructs the fixed three-bin layout from ship dimensions:
// forward hold, aft hold and deck. Holds sit below the waterline; the
// deck spans the full length at a shallower stacking height.
func buildBins(ship *model.Ship, s model.StowSettings) []*Bin {
	holdWidth := ship.Length * s.HoldLengthRatio
	holdDepth := ship.Width * s.HoldDepthRatio

	forward := &Bin{
		Name:      "ForwardHold",
		X:         0, Y: 0, Z: -s.HoldHeight,
		Width:     holdWidth,
		Depth:     holdDepth,
		Height:    s.HoldHeight,
		MaxWeight: ship.MaxWeight * s.HoldWeightShare,
		maxSpaces: s.MaxFreeSpaces,
	}
	aft := &Bin{
		Name:      "AftHold",
		X:         ship.Length * (1 - s.HoldLengthRatio), Y: 0, Z: -s.HoldHeight,
		Width:     holdWidth,
		Depth:     holdDepth,
		Height:    s.HoldHeight,
		MaxWeight: ship.MaxWeight * s.HoldWeightShare,
		maxSpaces: s.MaxFreeSpaces,
	}
	deck := &Bin{
		Name:      "Deck",
		Deck:      true,
		X:         0, Y: 0, Z: 0,
		Width:     ship.Length,
		Depth:     ship.Width,
		Height:    s.DeckHeight,
		MaxWeight: ship.MaxWeight * s.DeckWeightShare,
		maxSpaces: s.MaxFreeSpaces,
	}

	bins := []*Bin{forward, aft, deck}
	for _, b := range bins {
		b.Spaces = []geometry.Space{{
			X: b.X, Y: b.Y, Z: b.Z,
			Width: b.Width, Depth: b.Depth, Height: b.Height,
		}}
	}
	return bins
}
