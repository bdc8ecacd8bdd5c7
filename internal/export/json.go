package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON renders the report as indented JSON, the format consumed by
// the web front end and scripting pipelines. NaN is not representable
// in JSON, so an overweight plan serializes GM as null via a wrapper.
func WriteJSON(w io.Writer, report Report) error {
	type jsonAnalysis struct {
		CGLongitudinalPct float64  `json:"cg_longitudinal_pct"`
		CGTransversePct   float64  `json:"cg_transverse_pct"`
		GM                *float64 `json:"gm_m"` // null when overweight
		TotalCargoWeight  float64  `json:"total_cargo_weight_kg"`
		PlacedItems       int      `json:"placed_items"`
		Overweight        bool     `json:"overweight"`
		Band              string   `json:"stability_band"`
	}
	type jsonReport struct {
		Report
		Analysis jsonAnalysis `json:"analysis"`
	}

	analysis := jsonAnalysis{
		CGLongitudinalPct: report.Analysis.CGLongitudinalPct,
		CGTransversePct:   report.Analysis.CGTransversePct,
		TotalCargoWeight:  report.Analysis.TotalCargoWeight,
		PlacedItems:       report.Analysis.PlacedItems,
		Overweight:        report.Analysis.Overweight(),
		Band:              string(report.Analysis.Band()),
	}
	if !report.Analysis.Overweight() {
		gm := report.Analysis.GM
		analysis.GM = &gm
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonReport{Report: report, Analysis: analysis}); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
