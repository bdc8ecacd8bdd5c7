package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cargoforge/internal/engine"
	"github.com/piwi3910/cargoforge/internal/model"
	"github.com/piwi3910/cargoforge/internal/stability"
)

// buildTestReport assembles a small but realistic two-item report: one
// placed container and one stranded oversize piece.
func buildTestReport() Report {
	ship := &model.Ship{
		Name:            "MV Test",
		Length:          100,
		Width:           20,
		MaxWeight:       10_000_000,
		LightshipWeight: 5_000_000,
		LightshipKG:     4,
	}
	placed := model.NewCargoItem("CONT-001", 12_500, 6, 2.4, 2.6, model.CategoryStandard)
	placed.Position = &model.Position{X: 0, Y: 0, Z: -8}
	stranded := model.NewCargoItem("HUGE-002", 80_000, 40, 25, 9, model.CategoryHeavy)
	ship.Cargo = []model.CargoItem{placed, stranded}

	result := engine.Result{
		Algorithm: model.AlgorithmGuillotine3D,
		Placements: []engine.Placement{{
			ItemID: "CONT-001", Bin: "ForwardHold",
			Position: *placed.Position, Width: 6, Depth: 2.4, Height: 2.6,
		}},
		UnplacedIDs: []string{"HUGE-002"},
		Bins: []engine.BinSummary{
			{Name: "ForwardHold", Weight: 12_500, MaxWeight: 3_000_000, Items: 1},
			{Name: "AftHold", MaxWeight: 3_000_000},
			{Name: "Deck", MaxWeight: 4_000_000},
		},
	}
	return BuildReport(ship, result, stability.Analyze(ship))
}

func TestBuildReport_JoinsPlacementData(t *testing.T) {
	report := buildTestReport()

	require.Len(t, report.Cargo, 2)
	assert.True(t, report.Cargo[0].Placed)
	assert.Equal(t, "ForwardHold", report.Cargo[0].Bin)
	require.NotNil(t, report.Cargo[0].Position)
	assert.False(t, report.Cargo[1].Placed)
	assert.Empty(t, report.Cargo[1].Bin)
	assert.Nil(t, report.Cargo[1].Position)
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, buildTestReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	analysis, ok := decoded["analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, analysis["overweight"])
	assert.NotNil(t, analysis["gm_m"])
	assert.Equal(t, "stiff", analysis["stability_band"])

	cargo, ok := decoded["cargo"].([]any)
	require.True(t, ok)
	assert.Len(t, cargo, 2)
}

func TestWriteJSON_OverweightSerializesNullGM(t *testing.T) {
	report := buildTestReport()
	report.Analysis.GM = math.NaN()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, report), "NaN must never reach the encoder")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	analysis := decoded["analysis"].(map[string]any)
	assert.Nil(t, analysis["gm_m"])
	assert.Equal(t, true, analysis["overweight"])
	assert.Equal(t, "rejected", analysis["stability_band"])
}

func TestWriteCSV_OneRowPerItem(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, buildTestReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per item")

	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, "CONT-001", records[1][0])
	assert.Equal(t, "placed", records[1][6])
	assert.Equal(t, "ForwardHold", records[1][7])
	assert.Equal(t, "unplaced", records[2][6])
	assert.Empty(t, records[2][7])
}

func TestWriteMarkdown_ContainsSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, buildTestReport()))
	out := buf.String()

	assert.Contains(t, out, "# MV Test")
	assert.Contains(t, out, "## Cargo")
	assert.Contains(t, out, "## Bins")
	assert.Contains(t, out, "## Stability")
	assert.Contains(t, out, "| CONT-001 |")
	assert.Contains(t, out, "unplaced")
}

func TestWriteMarkdown_OverweightShowsRejection(t *testing.T) {
	report := buildTestReport()
	report.Analysis.GM = math.NaN()

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, report))
	assert.Contains(t, buf.String(), "PLAN REJECTED")
}

func TestWriteTable_SummarizesPlacement(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, buildTestReport()))
	out := buf.String()

	assert.Contains(t, out, "CONT-001")
	assert.Contains(t, out, "UNPLACED")
	assert.Contains(t, out, "1/2 items")
	assert.Contains(t, out, "ForwardHold")
}

func TestRenderLayoutASCII(t *testing.T) {
	out := RenderLayoutASCII(buildTestReport())

	assert.Contains(t, out, "Top-Down Cargo Layout")
	assert.Contains(t, out, "#", "placed cargo must appear on the grid")

	empty := RenderLayoutASCII(Report{})
	assert.Empty(t, empty)
}
