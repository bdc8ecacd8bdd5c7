package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cargoforge/internal/model"
)

func testShip(length, width, maxWeightKg float64, cargo ...model.CargoItem) *model.Ship {
	return &model.Ship{
		Name:      "Test",
		Length:    length,
		Width:     width,
		MaxWeight: maxWeightKg,
		Cargo:     cargo,
	}
}

func TestOptimize_SingleItemGoesToForwardHold(t *testing.T) {
	ship := testShip(100, 20, 10_000_000,
		model.NewCargoItem("A", 100_000, 10, 5, 4, model.CategoryStandard))

	result := New(model.DefaultSettings()).Optimize(ship)

	require.Len(t, result.Placements, 1)
	require.Empty(t, result.UnplacedIDs)

	p := result.Placements[0]
	assert.Equal(t, "A", p.ItemID)
	assert.Equal(t, "ForwardHold", p.Bin, "holds are smaller than the deck, best-fit prefers them")
	assert.Equal(t, model.Position{X: 0, Y: 0, Z: -8}, p.Position)
	assert.True(t, ship.Cargo[0].Placed())
}

func TestOptimize_ExactFitConsumesHold(t *testing.T) {
	// Ship 10x5: each hold is exactly 3x4x8. The first item fills the
	// forward hold completely, so the identical second item must land at
	// the aft hold origin.
	ship := testShip(10, 5, 10_000_000,
		model.NewCargoItem("FIT-1", 10_000, 3, 4, 8, model.CategoryStandard),
		model.NewCargoItem("FIT-2", 10_000, 3, 4, 8, model.CategoryStandard))

	result := New(model.DefaultSettings()).Optimize(ship)

	require.Len(t, result.Placements, 2)
	assert.Equal(t, "ForwardHold", result.Placements[0].Bin)
	assert.Equal(t, model.Position{X: 0, Y: 0, Z: -8}, result.Placements[0].Position)
	assert.Equal(t, "AftHold", result.Placements[1].Bin)
	assert.Equal(t, model.Position{X: 7, Y: 0, Z: -8}, result.Placements[1].Position)
}

func TestOptimize_VolumeDescendingOrder(t *testing.T) {
	// The small item comes first on the manifest but the big one must be
	// placed first.
	ship := testShip(100, 20, 10_000_000,
		model.NewCargoItem("SMALL", 1000, 2, 2, 2, model.CategoryStandard),
		model.NewCargoItem("BIG", 1000, 6, 4, 4, model.CategoryStandard))

	result := New(model.DefaultSettings()).Optimize(ship)

	require.Len(t, result.Placements, 2)
	assert.Equal(t, "BIG", result.Placements[0].ItemID)
	assert.Equal(t, "SMALL", result.Placements[1].ItemID)
}

func TestOptimize_EqualVolumesKeepManifestOrder(t *testing.T) {
	ship := testShip(100, 20, 10_000_000,
		model.NewCargoItem("FIRST", 1000, 2, 2, 2, model.CategoryStandard),
		model.NewCargoItem("SECOND", 1000, 4, 2, 1, model.CategoryStandard))

	result := New(model.DefaultSettings()).Optimize(ship)

	require.Len(t, result.Placements, 2)
	assert.Equal(t, "FIRST", result.Placements[0].ItemID,
		"equal volumes tie-break by manifest position")
}

func TestOptimize_BinWeightCapsSpillToNextBin(t *testing.T) {
	// Each hold takes 30% of 100 t = 30 t, the deck 40 t with a 30%
	// running-ratio limit. Four 25 t items: one per hold, one on deck,
	// the fourth has nowhere to go.
	items := []model.CargoItem{
		model.NewCargoItem("W-1", 25_000, 2, 2, 2, model.CategoryStandard),
		model.NewCargoItem("W-2", 25_000, 2, 2, 2, model.CategoryStandard),
		model.NewCargoItem("W-3", 25_000, 2, 2, 2, model.CategoryStandard),
		model.NewCargoItem("W-4", 25_000, 2, 2, 2, model.CategoryStandard),
	}
	ship := testShip(100, 20, 100_000, items...)

	result := New(model.DefaultSettings()).Optimize(ship)

	require.Len(t, result.Placements, 3)
	assert.Equal(t, []string{"W-4"}, result.UnplacedIDs)

	bins := map[string]string{}
	for _, p := range result.Placements {
		bins[p.ItemID] = p.Bin
	}
	assert.Equal(t, "ForwardHold", bins["W-1"])
	assert.Equal(t, "AftHold", bins["W-2"])
	assert.Equal(t, "Deck", bins["W-3"],
		"25 t is within the 30 percent deck ratio, the second deck item would not be")

	// Per-bin totals never exceed capacity.
	for _, b := range result.Bins {
		assert.LessOrEqual(t, b.Weight, b.MaxWeight, "bin %s over capacity", b.Name)
	}
}

func TestOptimize_HazmatSeparationBlocksAdjacentPlacement(t *testing.T) {
	// Ship 8x5: holds are 2.4 m wide so the 2.5 m cubes only fit on
	// deck. Every residual space around the first cube starts 2.5 m from
	// its origin, under the 3 m minimum, so the second cube stays ashore.
	ship := testShip(8, 5, 1_000_000,
		model.NewCargoItem("HAZ-1", 1000, 2.5, 2.5, 2.5, model.CategoryHazardous),
		model.NewCargoItem("HAZ-2", 1000, 2.5, 2.5, 2.5, model.CategoryHazardous))

	result := New(model.DefaultSettings()).Optimize(ship)

	require.Len(t, result.Placements, 1)
	assert.Equal(t, "Deck", result.Placements[0].Bin)
	assert.Equal(t, []string{"HAZ-2"}, result.UnplacedIDs)
	assert.NotEmpty(t, result.Diagnostics)
	assert.Nil(t, ship.Cargo[1].Position, "unplaced cargo keeps a nil position")
}

func TestOptimize_HazmatSeparationAllowsDistantPlacement(t *testing.T) {
	// 4 m cubes on a 10x5 ship: holds are too narrow, both go on deck.
	// The second lands in the right residual at x=4, exactly 4 m from
	// the first origin, clearing the 3 m minimum.
	ship := testShip(10, 5, 1_000_000,
		model.NewCargoItem("HAZ-1", 1000, 4, 4, 4, model.CategoryHazardous),
		model.NewCargoItem("HAZ-2", 1000, 4, 4, 4, model.CategoryHazardous))

	result := New(model.DefaultSettings()).Optimize(ship)

	require.Len(t, result.Placements, 2)
	require.Empty(t, result.UnplacedIDs)
	assert.Equal(t, model.Position{X: 0, Y: 0, Z: 0}, result.Placements[0].Position)
	assert.Equal(t, model.Position{X: 4, Y: 0, Z: 0}, result.Placements[1].Position)
}

func TestOptimize_OrientationRotationEnablesFit(t *testing.T) {
	// A 2x3x9 column cannot stand in an 8 m hold but fits lying down.
	ship := testShip(100, 20, 10_000_000,
		model.NewCargoItem("LONG", 5000, 2, 3, 9, model.CategoryStandard))

	result := New(model.DefaultSettings()).Optimize(ship)

	require.Len(t, result.Placements, 1)
	p := result.Placements[0]
	assert.LessOrEqual(t, p.Height, 8.0, "committed height must respect the hold")
	assert.Equal(t, "ForwardHold", p.Bin)
}

func TestOptimize_NoOverlapAndInBounds(t *testing.T) {
	items := []model.CargoItem{
		model.NewCargoItem("C-1", 8000, 6, 2.4, 2.6, model.CategoryStandard),
		model.NewCargoItem("C-2", 12_000, 12, 2.4, 2.6, model.CategoryStandard),
		model.NewCargoItem("C-3", 4000, 3, 3, 3, model.CategoryFragile),
		model.NewCargoItem("C-4", 20_000, 6, 4, 2, model.CategoryHeavy),
		model.NewCargoItem("C-5", 5000, 6, 2.4, 2.6, model.CategoryReefer),
		model.NewCargoItem("C-6", 2000, 2, 2, 2, model.CategoryStandard),
		model.NewCargoItem("C-7", 9000, 5, 5, 2, model.CategoryStandard),
		model.NewCargoItem("C-8", 1000, 1, 1, 1, model.CategoryStandard),
	}
	ship := testShip(100, 20, 10_000_000, items...)

	result := New(model.DefaultSettings()).Optimize(ship)
	require.Empty(t, result.UnplacedIDs, "everything fits on a 100 m ship")

	type box struct {
		id      string
		x, y, z float64
		w, d, h float64
	}
	boxes := map[string][]box{}
	for _, p := range result.Placements {
		boxes[p.Bin] = append(boxes[p.Bin], box{
			id: p.ItemID,
			x:  p.Position.X, y: p.Position.Y, z: p.Position.Z,
			w: p.Width, d: p.Depth, h: p.Height,
		})
	}

	for bin, list := range boxes {
		for i := range list {
			for j := i + 1; j < len(list); j++ {
				a, b := list[i], list[j]
				overlap := a.x < b.x+b.w && b.x < a.x+a.w &&
					a.y < b.y+b.d && b.y < a.y+a.d &&
					a.z < b.z+b.h && b.z < a.z+a.h
				assert.False(t, overlap, "%s and %s overlap in %s", a.id, b.id, bin)
			}
		}
	}
}

func TestOptimize_Deterministic(t *testing.T) {
	build := func() *model.Ship {
		return testShip(100, 20, 10_000_000,
			model.NewCargoItem("D-1", 8000, 6, 2.4, 2.6, model.CategoryStandard),
			model.NewCargoItem("D-2", 12_000, 12, 2.4, 2.6, model.CategoryStandard),
			model.NewCargoItem("D-3", 4000, 3, 3, 3, model.CategoryStandard),
			model.NewCargoItem("D-4", 4000, 3, 3, 3, model.CategoryHazardous))
	}

	first := New(model.DefaultSettings()).Optimize(build())
	second := New(model.DefaultSettings()).Optimize(build())

	assert.Equal(t, first.Placements, second.Placements)
	assert.Equal(t, first.UnplacedIDs, second.UnplacedIDs)
	assert.Equal(t, first.Bins, second.Bins)
}

func TestOptimize_ConservationOfItems(t *testing.T) {
	items := []model.CargoItem{
		model.NewCargoItem("K-1", 400_000, 6, 4, 4, model.CategoryStandard),
		model.NewCargoItem("K-2", 400_000, 6, 4, 4, model.CategoryStandard),
		model.NewCargoItem("K-3", 400_000, 6, 4, 4, model.CategoryStandard),
		model.NewCargoItem("K-4", 400_000, 6, 4, 4, model.CategoryStandard),
		model.NewCargoItem("K-5", 400_000, 6, 4, 4, model.CategoryStandard),
	}
	ship := testShip(60, 15, 1_000_000, items...)

	result := New(model.DefaultSettings()).Optimize(ship)

	assert.Equal(t, len(ship.Cargo), result.PlacedCount()+result.UnplacedCount(),
		"every manifest item is either placed or reported unplaced")
	assert.NotEmpty(t, result.UnplacedIDs, "1000 t ship cannot take 2000 t of cargo")
}

func TestOptimize_OversizedItemUnplaced(t *testing.T) {
	// Ship 20x10: holds are 6x8x8, the deck 20x10x4. A 30x25x10 piece
	// exceeds every bin in all six orientations, so geometry alone must
	// strand it.
	ship := testShip(20, 10, 10_000_000,
		model.NewCargoItem("MEGA", 5000, 30, 25, 10, model.CategoryStandard))

	result := New(model.DefaultSettings()).Optimize(ship)

	assert.Empty(t, result.Placements)
	assert.Equal(t, []string{"MEGA"}, result.UnplacedIDs)
	assert.NotEmpty(t, result.Diagnostics)
	assert.Nil(t, ship.Cargo[0].Position)
}

func TestOptimize_EmptyManifest(t *testing.T) {
	ship := testShip(100, 20, 10_000_000)

	result := New(model.DefaultSettings()).Optimize(ship)

	assert.Empty(t, result.Placements)
	assert.Empty(t, result.UnplacedIDs)
	require.Len(t, result.Bins, 3, "bin summaries are reported even for empty runs")
	for _, b := range result.Bins {
		assert.Zero(t, b.Weight)
	}
}

func TestOptimize_ReeferInHoldGetsAdvisoryNote(t *testing.T) {
	ship := testShip(100, 20, 10_000_000,
		model.NewCargoItem("COLD-1", 5000, 6, 2.4, 2.6, model.CategoryReefer))

	result := New(model.DefaultSettings()).Optimize(ship)

	require.Len(t, result.Placements, 1)
	assert.Equal(t, "ForwardHold", result.Placements[0].Bin,
		"advisory reefer note must not stop hold placement")
	require.NotEmpty(t, result.Diagnostics)
	assert.Contains(t, result.Diagnostics[0], "reefer")
}
