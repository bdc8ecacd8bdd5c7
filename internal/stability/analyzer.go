// Package stability computes static stability metrics for a loaded
// ship: centre of gravity, draft and metacentric height, using a
// box-hull approximation. The formulas are deliberately simple and
// fixed; numeric compatibility matters more than hydrodynamic accuracy.
package stability

import (
	"encoding/json"
	"math"

	"github.com/piwi3910/cargoforge/internal/model"
)

// Physical constants for the box-hull approximation.
const (
	SeawaterDensity       = 1.025 // tonnes per cubic metre at 15 degrees C
	WaterplaneCoefficient = 0.85  // Cw: waterplane area vs the L x B rectangle
)

// Result is the outcome of one analysis pass. GM is NaN when the loaded
// ship exceeds its maximum weight; every other field is still reported.
type Result struct {
	CGLongitudinalPct float64 `json:"cg_longitudinal_pct"`
	CGTransversePct   float64 `json:"cg_transverse_pct"`
	GM                float64 `json:"gm_m"`
	TotalCargoWeight  float64 `json:"total_cargo_weight_kg"`
	PlacedItems       int     `json:"placed_items"`

	// Intermediate hydrostatics, useful for reporting.
	VerticalCG      float64 `json:"kg_m"`
	Draft           float64 `json:"draft_m"`
	DisplacedVolume float64 `json:"displaced_volume_m3"`
	BM              float64 `json:"bm_m"`
}

// Overweight reports whether the analysis rejected the plan because
// lightship plus cargo exceeds the ship's maximum weight.
func (r Result) Overweight() bool {
	return math.IsNaN(r.GM)
}

// resultJSON is the wire form of Result. GM is a pointer because JSON
// cannot carry NaN; a rejected plan serializes it as null.
type resultJSON struct {
	CGLongitudinalPct float64  `json:"cg_longitudinal_pct"`
	CGTransversePct   float64  `json:"cg_transverse_pct"`
	GM                *float64 `json:"gm_m"`
	TotalCargoWeight  float64  `json:"total_cargo_weight_kg"`
	PlacedItems       int      `json:"placed_items"`
	VerticalCG        float64  `json:"kg_m"`
	Draft             float64  `json:"draft_m"`
	DisplacedVolume   float64  `json:"displaced_volume_m3"`
	BM                float64  `json:"bm_m"`
}

// MarshalJSON writes GM as null when the plan is overweight, so results
// survive encoding even on the rejection path.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		CGLongitudinalPct: r.CGLongitudinalPct,
		CGTransversePct:   r.CGTransversePct,
		TotalCargoWeight:  r.TotalCargoWeight,
		PlacedItems:       r.PlacedItems,
		VerticalCG:        r.VerticalCG,
		Draft:             r.Draft,
		DisplacedVolume:   r.DisplacedVolume,
		BM:                r.BM,
	}
	if !r.Overweight() {
		gm := r.GM
		out.GM = &gm
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores a null GM to NaN, keeping Overweight true
// across a save/load round trip.
func (r *Result) UnmarshalJSON(data []byte) error {
	var in resultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.CGLongitudinalPct = in.CGLongitudinalPct
	r.CGTransversePct = in.CGTransversePct
	r.TotalCargoWeight = in.TotalCargoWeight
	r.PlacedItems = in.PlacedItems
	r.VerticalCG = in.VerticalCG
	r.Draft = in.Draft
	r.DisplacedVolume = in.DisplacedVolume
	r.BM = in.BM
	if in.GM != nil {
		r.GM = *in.GM
	} else {
		r.GM = math.NaN()
	}
	return nil
}

// Analyze performs the full stability computation in a single pass over
// the cargo list. It has no side effects: analyzing the same manifest
// twice yields identical results.
func Analyze(ship *model.Ship) Result {
	result := Result{CGLongitudinalPct: 50.0, CGTransversePct: 50.0}

	var momentX, momentY float64
	verticalMoment := ship.LightshipWeight * ship.LightshipKG

	for i := range ship.Cargo {
		c := &ship.Cargo[i]
		if !c.Placed() {
			continue
		}
		result.PlacedItems++
		result.TotalCargoWeight += c.Weight
		momentX += c.Weight * (c.Position.X + c.Length/2)
		momentY += c.Weight * (c.Position.Y + c.Width/2)
		verticalMoment += c.Weight * (c.Position.Z + c.Height/2)
	}

	totalWeight := ship.LightshipWeight + result.TotalCargoWeight

	// Hard rejection: overweight plans get no stability figure at all.
	if totalWeight > ship.MaxWeight {
		result.GM = math.NaN()
		return result
	}

	// A ship with no lightship weight and nothing aboard displaces
	// nothing; report the neutral result instead of dividing by zero.
	if totalWeight < 0.01 {
		return result
	}

	if result.TotalCargoWeight > 0.01 {
		result.CGLongitudinalPct = (momentX / result.TotalCargoWeight) / ship.Length * 100.0
		result.CGTransversePct = (momentY / result.TotalCargoWeight) / ship.Width * 100.0
	}

	// KG: vertical centre of gravity above keel, lightship included.
	result.VerticalCG = verticalMoment / totalWeight

	// Box-hull hydrostatics. Draft assumes a rectangular waterplane;
	// the waterplane coefficient corrects the inertia for hull form.
	result.DisplacedVolume = (totalWeight / 1000.0) / SeawaterDensity
	result.Draft = result.DisplacedVolume / (ship.Length * ship.Width)
	kb := result.Draft / 2.0

	inertia := (ship.Length * math.Pow(ship.Width, 3) / 12.0) * WaterplaneCoefficient
	result.BM = inertia / result.DisplacedVolume

	result.GM = kb + result.BM - result.VerticalCG
	return result
}

// StabilityBand classifies GM against the ranges used for cargo ships.
type StabilityBand string

const (
	BandRejected   StabilityBand = "rejected"   // overweight, no GM
	BandCritical   StabilityBand = "critical"   // too tender
	BandAcceptable StabilityBand = "acceptable"
	BandOptimal    StabilityBand = "optimal"
	BandStiff      StabilityBand = "stiff" // uncomfortable rolling
)

// Band returns the stability classification for the result's GM.
func (r Result) Band() StabilityBand {
	switch {
	case r.Overweight():
		return BandRejected
	case r.GM < 0.3:
		return BandCritical
	case r.GM > 3.0:
		return BandStiff
	case r.GM >= 0.5 && r.GM <= 2.5:
		return BandOptimal
	default:
		return BandAcceptable
	}
}

// Balanced reports whether the cargo CG sits near midship: 45-55%
// longitudinally and 40-60% transversely.
func (r Result) Balanced() bool {
	return r.CGLongitudinalPct >= 45 && r.CGLongitudinalPct <= 55 &&
		r.CGTransversePct >= 40 && r.CGTransversePct <= 60
}
