package commands

import (
	"github.com/spf13/cobra"

	"github.com/piwi3910/cargoforge/internal/engine"
	"github.com/piwi3910/cargoforge/internal/export"
	"github.com/piwi3910/cargoforge/internal/manifest"
	"github.com/piwi3910/cargoforge/internal/stability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <plan.json>",
	Short: "Re-run stability analysis on a saved plan",
	Long: `Analyze loads a previously saved plan and recomputes the stability
figures from the stored positions. Use it after editing a plan file by
hand, or to render a saved plan in another format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := manifest.LoadPlan(args[0])
		if err != nil {
			return err
		}

		analysis := stability.Analyze(plan.Ship)
		var result engine.Result
		if plan.Placement != nil {
			result = *plan.Placement
		}
		report := export.BuildReport(plan.Ship, result, analysis)
		return writeReport(report, false)
	},
}
