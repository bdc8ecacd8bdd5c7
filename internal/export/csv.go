package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV renders one row per manifest item with its placement. The
// output stays a single rectangular table; summary metrics live in the
// other formats.
func WriteCSV(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "category", "weight_t", "length_m", "width_m", "height_m", "status", "bin", "pos_x", "pos_y", "pos_z"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

	for _, c := range report.Cargo {
		row := []string{
			c.ID,
			string(c.Category),
			f(c.WeightKg / 1000.0),
			f(c.Length),
			f(c.Width),
			f(c.Height),
		}
		if c.Placed {
			row = append(row, "placed", c.Bin, f(c.Position.X), f(c.Position.Y), f(c.Position.Z))
		} else {
			row = append(row, "unplaced", "", "", "", "")
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}
