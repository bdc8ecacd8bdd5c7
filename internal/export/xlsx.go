package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the plan as a workbook with three sheets: the cargo
// manifest with placements, per-bin utilization, and the stability
// analysis. Numeric cells stay numeric so the workbook can be filtered
// and charted directly.
func ExportXLSX(path string, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	const manifestSheet = "Manifest"
	if err := f.SetSheetName("Sheet1", manifestSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	setRow := func(sheet string, row int, values []any) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	header := []any{"ID", "Category", "Weight (t)", "Length (m)", "Width (m)", "Height (m)", "Status", "Bin", "X", "Y", "Z"}
	if err := setRow(manifestSheet, 1, header); err != nil {
		return fmt.Errorf("writing manifest header: %w", err)
	}
	for i, c := range report.Cargo {
		row := []any{c.ID, string(c.Category), c.WeightKg / 1000.0, c.Length, c.Width, c.Height}
		if c.Placed {
			row = append(row, "placed", c.Bin, c.Position.X, c.Position.Y, c.Position.Z)
		} else {
			row = append(row, "unplaced")
		}
		if err := setRow(manifestSheet, i+2, row); err != nil {
			return fmt.Errorf("writing manifest row %d: %w", i+1, err)
		}
	}

	const binsSheet = "Bins"
	if _, err := f.NewSheet(binsSheet); err != nil {
		return fmt.Errorf("creating bins sheet: %w", err)
	}
	if err := setRow(binsSheet, 1, []any{"Bin", "Items", "Weight (t)", "Capacity (t)", "Utilization (%)"}); err != nil {
		return fmt.Errorf("writing bins header: %w", err)
	}
	for i, b := range report.Bins {
		row := []any{b.Name, b.Items, b.Weight / 1000.0, b.MaxWeight / 1000.0, b.Utilization()}
		if err := setRow(binsSheet, i+2, row); err != nil {
			return fmt.Errorf("writing bins row %d: %w", i+1, err)
		}
	}

	const stabilitySheet = "Stability"
	if _, err := f.NewSheet(stabilitySheet); err != nil {
		return fmt.Errorf("creating stability sheet: %w", err)
	}
	a := report.Analysis
	rows := [][]any{
		{"Placed items", a.PlacedItems},
		{"Cargo weight (t)", a.TotalCargoWeight / 1000.0},
		{"Overweight", a.Overweight()},
	}
	if !a.Overweight() {
		rows = append(rows,
			[]any{"CG longitudinal (%)", a.CGLongitudinalPct},
			[]any{"CG transverse (%)", a.CGTransversePct},
			[]any{"Draft (m)", a.Draft},
			[]any{"GM (m)", a.GM},
			[]any{"Band", string(a.Band())},
		)
	}
	for i, row := range rows {
		if err := setRow(stabilitySheet, i+1, row); err != nil {
			return fmt.Errorf("writing stability row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
