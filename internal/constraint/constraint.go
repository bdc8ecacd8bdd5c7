// Package constraint validates candidate cargo placements against
// ship-wide state. All checks are pure predicates: the ship under
// evaluation is an explicit parameter, never ambient state, so
// concurrent optimization runs cannot see each other's manifests.
//
// Hard constraints reject a candidate; advisory checks only attach
// notes and never block placement. That split changes placement
// outcomes and must be preserved.
package constraint

import (
	"fmt"
	"math"

	"github.com/piwi3910/cargoforge/internal/geometry"
	"github.com/piwi3910/cargoforge/internal/model"
)

// BinState is the slice of bin information the validator needs:
// identity plus the running weight totals.
type BinState struct {
	Name          string
	Deck          bool
	CurrentWeight float64 // kg
	MaxWeight     float64 // kg
}

// Result is the outcome of validating one (bin, space) candidate.
type Result struct {
	OK     bool
	Reason string   // first hard violation, empty when OK
	Notes  []string // advisory diagnostics, placement proceeds regardless
}

// Validator evaluates placement candidates against configured limits.
type Validator struct {
	MaxPointLoad        float64 // tonnes per square metre
	MinHazmatSeparation float64 // metres
	MaxDeckLoadRatio    float64 // share of ship max weight
	FragileDepthLimit   float64 // metres, advisory only
}

// NewValidator builds a validator from stow settings.
func NewValidator(s model.StowSettings) Validator {
	return Validator{
		MaxPointLoad:        s.MaxPointLoad,
		MinHazmatSeparation: s.MinHazmatSeparation,
		MaxDeckLoadRatio:    s.MaxDeckLoadRatio,
		FragileDepthLimit:   s.FragileDepthLimit,
	}
}

// PointLoad returns the item's deck loading in tonnes per square metre.
// The second return is false for degenerate footprints, which the
// caller must treat as a rejection: ambiguous data fails closed.
func PointLoad(item *model.CargoItem) (float64, bool) {
	area := item.FootprintArea()
	if area < 0.01 {
		return 0, false
	}
	return (item.Weight / 1000.0) / area, true
}

// CheckPointLoad applies the point-load ceiling. It holds for every
// category, not just heavy cargo.
func (v Validator) CheckPointLoad(item *model.CargoItem) (bool, string) {
	load, ok := PointLoad(item)
	if !ok {
		return false, fmt.Sprintf("%s has a degenerate footprint, cannot derive point load", item.ID)
	}
	if load > v.MaxPointLoad {
		return false, fmt.Sprintf("%s exceeds max point load (%.1f > %.1f t/m2)", item.ID, load, v.MaxPointLoad)
	}
	return true, ""
}

// CheckHazmatSeparation verifies the minimum distance from every other
// placed hazardous item, measured between placement origins. Items that
// are not hazardous always pass.
func (v Validator) CheckHazmatSeparation(ship *model.Ship, item *model.CargoItem, x, y, z float64) (bool, string) {
	if item.Category != model.CategoryHazardous {
		return true, ""
	}
	for i := range ship.Cargo {
		other := &ship.Cargo[i]
		if !other.Placed() || other == item {
			continue
		}
		if other.Category != model.CategoryHazardous {
			continue
		}
		dx := other.Position.X - x
		dy := other.Position.Y - y
		dz := other.Position.Z - z
		dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if dist < v.MinHazmatSeparation {
			return false, fmt.Sprintf("%s would be %.1f m from hazardous %s, minimum is %.1f m",
				item.ID, dist, other.ID, v.MinHazmatSeparation)
		}
	}
	return true, ""
}

// CheckDeckLoad limits the deck's share of the ship's maximum weight.
// Non-deck bins always pass.
func (v Validator) CheckDeckLoad(ship *model.Ship, item *model.CargoItem, bin BinState) (bool, string) {
	if !bin.Deck {
		return true, ""
	}
	ratio := (bin.CurrentWeight + item.Weight) / ship.MaxWeight
	if ratio > v.MaxDeckLoadRatio {
		return false, fmt.Sprintf("deck weight would reach %.0f%% of ship max, limit is %.0f%%",
			ratio*100, v.MaxDeckLoadRatio*100)
	}
	return true, ""
}

// CheckPlacement runs every hard constraint and collects advisory notes
// for one (bin, space) candidate. It runs once per candidate, before the
// orientation loop, so no check here may depend on orientation.
func (v Validator) CheckPlacement(ship *model.Ship, item *model.CargoItem, bin BinState, space geometry.Space) Result {
	if ok, reason := v.CheckPointLoad(item); !ok {
		return Result{OK: false, Reason: reason}
	}
	if ok, reason := v.CheckHazmatSeparation(ship, item, space.X, space.Y, space.Z); !ok {
		return Result{OK: false, Reason: reason}
	}

	var notes []string
	if item.Category == model.CategoryReefer && !bin.Deck {
		notes = append(notes, fmt.Sprintf("reefer %s placed in %s, deck preferred for power access", item.ID, bin.Name))
	}
	if item.Category == model.CategoryFragile && space.Z < v.FragileDepthLimit {
		notes = append(notes, fmt.Sprintf("fragile %s placed deep in hold (z=%.1f m)", item.ID, space.Z))
	}

	if ok, reason := v.CheckDeckLoad(ship, item, bin); !ok {
		return Result{OK: false, Reason: reason, Notes: notes}
	}

	return Result{OK: true, Notes: notes}
}
