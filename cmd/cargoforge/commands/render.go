package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/piwi3910/cargoforge/internal/export"
	"github.com/piwi3910/cargoforge/internal/stability"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00B4D8"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1C40F"))
	badStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// outputWriter resolves the destination for rendered output: the
// --output flag (or config default) or stdout. The caller must close
// the returned writer when it is a file.
func outputWriter() (io.Writer, func() error, error) {
	path := outputPath
	if path == "" {
		path = viper.GetString("output")
	}
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}

// writeReport renders the report in the selected format.
func writeReport(report export.Report, showViz bool) error {
	format := formatName
	if format == "" || format == "human" {
		if v := viper.GetString("format"); v != "" && formatName == "human" {
			format = v
		}
	}

	w, closeFn, err := outputWriter()
	if err != nil {
		return err
	}
	defer closeFn()

	switch format {
	case "json":
		return export.WriteJSON(w, report)
	case "csv":
		return export.WriteCSV(w, report)
	case "markdown":
		return export.WriteMarkdown(w, report)
	case "table":
		if err := export.WriteTable(w, report); err != nil {
			return err
		}
		if showViz {
			fmt.Fprint(w, export.RenderLayoutASCII(report))
		}
		return nil
	case "human", "":
		printHumanReport(w, report, showViz)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// printHumanReport is the styled terminal report.
func printHumanReport(w io.Writer, report export.Report, showViz bool) {
	name := report.ShipName
	if name == "" {
		name = "Stowage Plan"
	}
	fmt.Fprintln(w, headingStyle.Render("=== "+name+" ==="))
	fmt.Fprintf(w, "Ship: %.1f m x %.1f m, max weight %.1f t\n\n",
		report.Length, report.Width, report.MaxWeight/1000.0)

	placed := 0
	for _, c := range report.Cargo {
		if c.Placed {
			placed++
		}
	}
	fmt.Fprintln(w, headingStyle.Render("PLACEMENT"))
	for _, c := range report.Cargo {
		if c.Placed {
			fmt.Fprintf(w, "  %s %-15s %-10s %7.1f t  %s @ (%.1f, %.1f, %.1f)\n",
				okStyle.Render("+"), c.ID, c.Category, c.WeightKg/1000.0,
				c.Bin, c.Position.X, c.Position.Y, c.Position.Z)
		} else {
			fmt.Fprintf(w, "  %s %-15s %-10s %7.1f t  %s\n",
				badStyle.Render("x"), c.ID, c.Category, c.WeightKg/1000.0,
				badStyle.Render("UNPLACED"))
		}
	}
	if len(report.Cargo) > 0 {
		fmt.Fprintf(w, "\n  %d/%d items placed (%.1f%%)\n",
			placed, len(report.Cargo), float64(placed)/float64(len(report.Cargo))*100.0)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("BINS"))
	for _, b := range report.Bins {
		fmt.Fprintf(w, "  %-14s %d items, %.1f / %.1f t (%.1f%%)\n",
			b.Name, b.Items, b.Weight/1000.0, b.MaxWeight/1000.0, b.Utilization())
	}

	fmt.Fprintln(w)
	printStability(w, report.Analysis, report.MaxWeight)

	if showViz {
		fmt.Fprint(w, export.RenderLayoutASCII(report))
	}
}

// printStability renders the analysis section with band coloring and
// the deadweight safety margin warning.
func printStability(w io.Writer, a stability.Result, maxWeightKg float64) {
	fmt.Fprintln(w, headingStyle.Render("STABILITY"))
	if a.Overweight() {
		fmt.Fprintln(w, "  "+badStyle.Render("PLAN REJECTED: total weight exceeds maximum capacity"))
		fmt.Fprintf(w, "  Cargo weight: %.1f t over %d items\n", a.TotalCargoWeight/1000.0, a.PlacedItems)
		return
	}

	fmt.Fprintf(w, "  Cargo weight: %.1f t over %d items\n", a.TotalCargoWeight/1000.0, a.PlacedItems)
	fmt.Fprintf(w, "  CG: %.1f%% longitudinal, %.1f%% transverse", a.CGLongitudinalPct, a.CGTransversePct)
	if a.Balanced() {
		fmt.Fprintf(w, " %s\n", okStyle.Render("(balanced)"))
	} else {
		fmt.Fprintf(w, " %s\n", warnStyle.Render("(off-center)"))
	}
	fmt.Fprintf(w, "  Draft: %.2f m, KB+BM-KG: %.2f + %.2f - %.2f\n", a.Draft, a.Draft/2.0, a.BM, a.VerticalCG)

	gmLine := fmt.Sprintf("  GM: %.2f m (%s)", a.GM, a.Band())
	switch a.Band() {
	case stability.BandOptimal:
		fmt.Fprintln(w, okStyle.Render(gmLine))
	case stability.BandCritical, stability.BandStiff:
		fmt.Fprintln(w, badStyle.Render(gmLine))
	default:
		fmt.Fprintln(w, warnStyle.Render(gmLine))
	}

	if maxWeightKg > 0 && a.TotalCargoWeight > 0 {
		usage := a.TotalCargoWeight / maxWeightKg
		if usage > 0.9 {
			fmt.Fprintln(w, "  "+warnStyle.Render(fmt.Sprintf(
				"WARNING: cargo uses %.1f%% of maximum weight, above the 90%% safety margin", usage*100.0)))
		}
	}
}

// printWarnings emits manifest parse warnings to stderr.
func printWarnings(warnings []string) {
	if quiet {
		return
	}
	for _, warning := range warnings {
		fmt.Fprintln(os.Stderr, dimStyle.Render("warning: "+warning))
	}
}

// printDiagnostics emits placement diagnostics to stderr.
func printDiagnostics(diags []string) {
	if quiet {
		return
	}
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, dimStyle.Render("note: "+d))
	}
}
