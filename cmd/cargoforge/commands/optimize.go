package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargoforge/internal/engine"
	"github.com/piwi3910/cargoforge/internal/export"
	"github.com/piwi3910/cargoforge/internal/manifest"
	"github.com/piwi3910/cargoforge/internal/model"
	"github.com/piwi3910/cargoforge/internal/stability"
)

var (
	algorithmName string
	showViz       bool
	savePath      string
	timeoutSec    int
	maxIterations int
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <ship.cfg> <cargo-file>",
	Short: "Place cargo and report stowage plan with stability analysis",
	Long: `Optimize reads the ship configuration and cargo manifest, places
every item using the selected algorithm and reports the plan.

The cargo file may be the whitespace text format, CSV or XLSX; "-" reads
the text format from stdin.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ship, err := manifest.LoadShip(args[0])
		if err != nil {
			return err
		}

		list, err := loadCargo(args[1])
		if err != nil {
			return err
		}
		printWarnings(list.Warnings)
		ship.Cargo = list.Items

		settings := model.DefaultSettings()
		algo, ok := model.ParseAlgorithm(algorithmName)
		if !ok {
			return fmt.Errorf("unknown algorithm %q (want 3d, 2d or auto)", algorithmName)
		}
		settings.Algorithm = algo

		opt := engine.New(settings)
		result := opt.Optimize(ship)
		printDiagnostics(result.Diagnostics)

		analysis := stability.Analyze(ship)
		report := export.BuildReport(ship, result, analysis)

		if savePath != "" {
			plan := manifest.NewPlan(ship, settings, &result, &analysis)
			if err := manifest.SavePlan(savePath, plan); err != nil {
				return err
			}
		}

		return writeReport(report, showViz)
	},
}

func init() {
	optimizeCmd.Flags().StringVarP(&algorithmName, "algorithm", "a", "3d", "placement algorithm: 3d, 2d or auto")
	optimizeCmd.Flags().BoolVar(&showViz, "viz", false, "include the ASCII top-down deck layout")
	optimizeCmd.Flags().StringVar(&savePath, "save", "", "save the plan as JSON to this path")

	// Accepted for compatibility with older scripts; placement always
	// runs to completion.
	optimizeCmd.Flags().IntVar(&timeoutSec, "timeout", 0, "placement timeout in seconds (not enforced)")
	optimizeCmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "placement iteration cap (not enforced)")
	optimizeCmd.Flags().MarkHidden("timeout")
	optimizeCmd.Flags().MarkHidden("max-iterations")
}

// loadCargo picks the parser from the file extension: .csv and .xlsx
// use the spreadsheet importers, everything else (including stdin via
// "-") uses the text manifest format.
func loadCargo(path string) (manifest.CargoList, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return manifest.ImportCargoCSV(path)
	case ".xlsx":
		return manifest.ImportCargoXLSX(path)
	default:
		return manifest.LoadCargoList(path)
	}
}
