package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargoforge/internal/export"
	"github.com/piwi3910/cargoforge/internal/manifest"
	"github.com/piwi3910/cargoforge/internal/stability"
)

var (
	exportPDF    bool
	exportXLSX   bool
	exportLabels bool
	exportDXF    bool
	exportDir    string
)

var exportCmd = &cobra.Command{
	Use:   "export <plan.json>",
	Short: "Render a saved plan as PDF, XLSX, cargo labels or DXF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := manifest.LoadPlan(args[0])
		if err != nil {
			return err
		}
		if plan.Placement == nil {
			return fmt.Errorf("plan %s has no placement result; run optimize --save first", args[0])
		}

		analysis := plan.Analysis
		if analysis == nil {
			a := stability.Analyze(plan.Ship)
			analysis = &a
		}
		report := export.BuildReport(plan.Ship, *plan.Placement, *analysis)

		if !exportPDF && !exportXLSX && !exportLabels && !exportDXF {
			return fmt.Errorf("nothing to export: pass one or more of --pdf, --xlsx, --labels, --dxf")
		}
		if err := os.MkdirAll(exportDir, 0755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}

		base := plan.Ship.Name
		if base == "" {
			base = "stowage-plan"
		}

		type job struct {
			enabled bool
			suffix  string
			run     func(string, export.Report) error
		}
		jobs := []job{
			{exportPDF, ".pdf", export.ExportPDF},
			{exportXLSX, ".xlsx", export.ExportXLSX},
			{exportLabels, "-labels.pdf", export.ExportLabels},
			{exportDXF, ".dxf", export.ExportDXF},
		}
		for _, j := range jobs {
			if !j.enabled {
				continue
			}
			path := filepath.Join(exportDir, base+j.suffix)
			if err := j.run(path, report); err != nil {
				return err
			}
			fmt.Println(okStyle.Render("wrote " + path))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportPDF, "pdf", false, "write the stowage plan PDF")
	exportCmd.Flags().BoolVar(&exportXLSX, "xlsx", false, "write the XLSX workbook")
	exportCmd.Flags().BoolVar(&exportLabels, "labels", false, "write QR-coded cargo labels (PDF)")
	exportCmd.Flags().BoolVar(&exportDXF, "dxf", false, "write the DXF deck drawing")
	exportCmd.Flags().StringVar(&exportDir, "out", ".", "directory for exported files")
}
