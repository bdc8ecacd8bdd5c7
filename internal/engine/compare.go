package engine

import (
	"fmt"

	"github.com/piwi3910/cargoforge/internal/model"
)

// placeAuto runs both placement strategies on manifest copies and keeps
// the plan that commits more items, breaking ties on committed weight.
// The winning clone's positions are copied back onto the real manifest.
func (o *Optimizer) placeAuto(ship *model.Ship) Result {
	algos := []model.Algorithm{model.AlgorithmGuillotine3D, model.AlgorithmShelf2D}

	var bestShip *model.Ship
	var bestResult Result
	chosen := false

	for _, algo := range algos {
		trial := ship.Clone()
		trial.ResetPositions()

		opt := New(o.Settings)
		opt.Settings.Algorithm = algo
		opt.Logger = o.Logger
		res := opt.Optimize(trial)

		if !chosen || betterPlan(res, bestResult) {
			chosen = true
			bestShip = trial
			bestResult = res
		}
	}

	for i := range ship.Cargo {
		ship.Cargo[i].Position = bestShip.Cargo[i].Position
	}
	bestResult.Diagnostics = append(bestResult.Diagnostics,
		fmt.Sprintf("auto mode selected %s (%d placed, %.0f kg)",
			bestResult.Algorithm, bestResult.PlacedCount(), bestResult.PlacedWeight()))
	return bestResult
}

// betterPlan prefers more placed items, then more committed weight.
func betterPlan(a, b Result) bool {
	if a.PlacedCount() != b.PlacedCount() {
		return a.PlacedCount() > b.PlacedCount()
	}
	return a.PlacedWeight() > b.PlacedWeight()
}
