package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cargoforge/internal/geometry"
	"github.com/piwi3910/cargoforge/internal/model"
)

func testValidator() Validator {
	return NewValidator(model.DefaultSettings())
}

func testShip() *model.Ship {
	return &model.Ship{Length: 100, Width: 20, MaxWeight: 1_000_000}
}

func TestPointLoad_DegenerateFootprintFailsClosed(t *testing.T) {
	item := model.NewCargoItem("THIN", 500, 0.05, 0.1, 1, model.CategoryStandard)

	_, ok := PointLoad(&item)
	assert.False(t, ok, "footprint below 0.01 m2 must not yield a load figure")

	pass, reason := testValidator().CheckPointLoad(&item)
	assert.False(t, pass)
	assert.Contains(t, reason, "degenerate footprint")
}

func TestCheckPointLoad_ExceedsCeiling(t *testing.T) {
	// 12 t on a 0.01 m2 base: 1200 t/m2, over the 1000 t/m2 limit.
	item := model.NewCargoItem("ANVIL", 12_000, 0.1, 0.1, 1, model.CategoryHeavy)

	pass, reason := testValidator().CheckPointLoad(&item)
	assert.False(t, pass)
	assert.Contains(t, reason, "max point load")
}

func TestCheckPointLoad_NormalCargoPasses(t *testing.T) {
	item := model.NewCargoItem("BOX", 10_000, 6, 2.4, 2.6, model.CategoryStandard)

	pass, reason := testValidator().CheckPointLoad(&item)
	assert.True(t, pass)
	assert.Empty(t, reason)
}

func TestCheckHazmatSeparation(t *testing.T) {
	ship := testShip()
	placed := model.NewCargoItem("HAZ-1", 1000, 2, 2, 2, model.CategoryHazardous)
	placed.Position = &model.Position{X: 10, Y: 0, Z: 0}
	ship.Cargo = []model.CargoItem{placed}

	item := model.NewCargoItem("HAZ-2", 1000, 2, 2, 2, model.CategoryHazardous)
	ship.Cargo = append(ship.Cargo, item)
	candidate := &ship.Cargo[1]

	v := testValidator()

	pass, reason := v.CheckHazmatSeparation(ship, candidate, 12, 0, 0)
	assert.False(t, pass, "2 m from another hazardous item is under the 3 m minimum")
	assert.Contains(t, reason, "HAZ-1")

	pass, _ = v.CheckHazmatSeparation(ship, candidate, 13.5, 0, 0)
	assert.True(t, pass, "3.5 m separation is enough")

	// Non-hazardous cargo ignores the rule entirely.
	normal := model.NewCargoItem("BOX", 1000, 2, 2, 2, model.CategoryStandard)
	pass, _ = v.CheckHazmatSeparation(ship, &normal, 10, 0, 0)
	assert.True(t, pass)
}

func TestCheckHazmatSeparation_IgnoresUnplacedAndSelf(t *testing.T) {
	ship := testShip()
	ship.Cargo = []model.CargoItem{
		model.NewCargoItem("HAZ-1", 1000, 2, 2, 2, model.CategoryHazardous), // unplaced
	}
	item := &ship.Cargo[0]

	pass, _ := testValidator().CheckHazmatSeparation(ship, item, 0, 0, 0)
	assert.True(t, pass, "unplaced items and the item itself are skipped")
}

func TestCheckDeckLoad(t *testing.T) {
	ship := testShip()
	v := testValidator()
	item := model.NewCargoItem("BOX", 60_000, 4, 4, 4, model.CategoryStandard)

	deck := BinState{Name: "Deck", Deck: true, CurrentWeight: 250_000}
	pass, reason := v.CheckDeckLoad(ship, &item, deck)
	assert.False(t, pass, "310 t on deck is 31 percent of ship max, over the limit")
	assert.Contains(t, reason, "deck weight")

	hold := BinState{Name: "ForwardHold", CurrentWeight: 250_000}
	pass, _ = v.CheckDeckLoad(ship, &item, hold)
	assert.True(t, pass, "non-deck bins never hit the deck ratio")

	lightDeck := BinState{Name: "Deck", Deck: true, CurrentWeight: 100_000}
	pass, _ = v.CheckDeckLoad(ship, &item, lightDeck)
	assert.True(t, pass)
}

func TestCheckPlacement_AdvisoryNotesDoNotBlock(t *testing.T) {
	ship := testShip()
	v := testValidator()

	reefer := model.NewCargoItem("COLD-1", 5000, 6, 2.4, 2.6, model.CategoryReefer)
	ship.Cargo = []model.CargoItem{reefer}
	hold := BinState{Name: "ForwardHold"}
	space := geometry.Space{X: 0, Y: 0, Z: -8, Width: 10, Depth: 10, Height: 8}

	res := v.CheckPlacement(ship, &ship.Cargo[0], hold, space)
	require.True(t, res.OK, "advisory checks never reject")
	require.Len(t, res.Notes, 1)
	assert.Contains(t, res.Notes[0], "reefer")

	fragile := model.NewCargoItem("GLASS-1", 5000, 6, 2.4, 2.6, model.CategoryFragile)
	ship.Cargo = []model.CargoItem{fragile}
	res = v.CheckPlacement(ship, &ship.Cargo[0], hold, space)
	require.True(t, res.OK)
	require.Len(t, res.Notes, 1)
	assert.Contains(t, res.Notes[0], "deep in hold")
}

func TestCheckPlacement_HardViolationWins(t *testing.T) {
	ship := testShip()
	v := testValidator()

	// Fragile AND overloaded: the point-load rejection fires before any
	// advisory note is collected.
	item := model.NewCargoItem("GLASS-2", 12_000, 0.1, 0.1, 1, model.CategoryFragile)
	ship.Cargo = []model.CargoItem{item}
	space := geometry.Space{Z: -8, Width: 10, Depth: 10, Height: 8}

	res := v.CheckPlacement(ship, &ship.Cargo[0], BinState{Name: "ForwardHold"}, space)
	assert.False(t, res.OK)
	assert.Contains(t, res.Reason, "max point load")
	assert.Empty(t, res.Notes)
}
