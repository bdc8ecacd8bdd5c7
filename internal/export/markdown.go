package export

import (
	"fmt"
	"io"
)

// WriteMarkdown renders the plan as a Markdown document: a placement
// table followed by bin utilization and the stability summary.
func WriteMarkdown(w io.Writer, report Report) error {
	name := report.ShipName
	if name == "" {
		name = "Stowage Plan"
	}
	fmt.Fprintf(w, "# %s\n\n", name)
	fmt.Fprintf(w, "Ship: %.2f m x %.2f m, max weight %.2f t\n\n",
		report.Length, report.Width, report.MaxWeight/1000.0)

	fmt.Fprintln(w, "## Cargo")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| ID | Category | Weight (t) | Dimensions (m) | Status | Bin | Position |")
	fmt.Fprintln(w, "|----|----------|-----------:|----------------|--------|-----|----------|")
	for _, c := range report.Cargo {
		dims := fmt.Sprintf("%.1f x %.1f x %.1f", c.Length, c.Width, c.Height)
		if c.Placed {
			fmt.Fprintf(w, "| %s | %s | %.2f | %s | placed | %s | (%.1f, %.1f, %.1f) |\n",
				c.ID, c.Category, c.WeightKg/1000.0, dims, c.Bin,
				c.Position.X, c.Position.Y, c.Position.Z)
		} else {
			fmt.Fprintf(w, "| %s | %s | %.2f | %s | unplaced | - | - |\n",
				c.ID, c.Category, c.WeightKg/1000.0, dims)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Bins")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Bin | Items | Weight (t) | Capacity (t) | Utilization |")
	fmt.Fprintln(w, "|-----|------:|-----------:|-------------:|------------:|")
	for _, b := range report.Bins {
		fmt.Fprintf(w, "| %s | %d | %.2f | %.2f | %.1f%% |\n",
			b.Name, b.Items, b.Weight/1000.0, b.MaxWeight/1000.0, b.Utilization())
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Stability")
	fmt.Fprintln(w)
	a := report.Analysis
	if a.Overweight() {
		fmt.Fprintln(w, "**PLAN REJECTED**: total weight exceeds the ship's maximum capacity.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "- Placed items: %d\n", a.PlacedItems)
		fmt.Fprintf(w, "- Cargo weight: %.2f t\n", a.TotalCargoWeight/1000.0)
		return nil
	}
	fmt.Fprintf(w, "- Placed items: %d\n", a.PlacedItems)
	fmt.Fprintf(w, "- Cargo weight: %.2f t\n", a.TotalCargoWeight/1000.0)
	fmt.Fprintf(w, "- CG longitudinal / transverse: %.1f%% / %.1f%%\n", a.CGLongitudinalPct, a.CGTransversePct)
	fmt.Fprintf(w, "- Draft: %.2f m\n", a.Draft)
	fmt.Fprintf(w, "- Metacentric height (GM): %.2f m (%s)\n", a.GM, a.Band())
	return nil
}
