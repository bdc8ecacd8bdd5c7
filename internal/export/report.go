// Package export renders finished stowage plans to the supported output
// formats: JSON, CSV, Markdown, ASCII tables and layout art, PDF plans,
// QR-coded cargo labels, XLSX workbooks and DXF deck drawings.
package export

import (
	"github.com/piwi3910/cargoforge/internal/engine"
	"github.com/piwi3910/cargoforge/internal/model"
	"github.com/piwi3910/cargoforge/internal/stability"
)

// CargoEntry is one manifest row in a rendered report.
type CargoEntry struct {
	ID       string          `json:"id"`
	Category model.Category  `json:"category"`
	WeightKg float64         `json:"weight_kg"`
	Length   float64         `json:"length_m"`
	Width    float64         `json:"width_m"`
	Height   float64         `json:"height_m"`
	Placed   bool            `json:"placed"`
	Bin      string          `json:"bin,omitempty"`
	Position *model.Position `json:"position,omitempty"`
}

// Report is the assembled view of one run, shared by all renderers.
type Report struct {
	ShipName   string               `json:"ship_name,omitempty"`
	Length     float64              `json:"length_m"`
	Width      float64              `json:"width_m"`
	MaxWeight  float64              `json:"max_weight_kg"`
	Cargo      []CargoEntry         `json:"cargo"`
	Bins       []engine.BinSummary  `json:"bins"`
	Analysis   stability.Result     `json:"analysis"`
	Placements []engine.Placement   `json:"placements"`
}

// BuildReport flattens a ship, placement result and analysis into the
// renderer-neutral report form.
func BuildReport(ship *model.Ship, result engine.Result, analysis stability.Result) Report {
	binByItem := make(map[string]string, len(result.Placements))
	for _, p := range result.Placements {
		binByItem[p.ItemID] = p.Bin
	}

	report := Report{
		ShipName:   ship.Name,
		Length:     ship.Length,
		Width:      ship.Width,
		MaxWeight:  ship.MaxWeight,
		Bins:       result.Bins,
		Analysis:   analysis,
		Placements: result.Placements,
	}
	for i := range ship.Cargo {
		c := &ship.Cargo[i]
		entry := CargoEntry{
			ID:       c.ID,
			Category: c.Category,
			WeightKg: c.Weight,
			Length:   c.Length,
			Width:    c.Width,
			Height:   c.Height,
			Placed:   c.Placed(),
		}
		if c.Placed() {
			entry.Bin = binByItem[c.ID]
			entry.Position = c.Position
		}
		report.Cargo = append(report.Cargo, entry)
	}
	return report
}
