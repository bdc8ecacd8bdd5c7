package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargoforge/internal/constraint"
	"github.com/piwi3910/cargoforge/internal/manifest"
	"github.com/piwi3910/cargoforge/internal/model"
)

var validateCmd = &cobra.Command{
	Use:   "validate <ship.cfg> <cargo-file>",
	Short: "Check a manifest against ship limits without placing cargo",
	Long: `Validate runs the static checks that do not depend on placement:
per-item point load and aggregate weight against ship capacity. Items
that can never be stowed are reported before any optimization runs.`,
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
		validator := constraint.NewValidator(settings)

		issues := 0
		for i := range ship.Cargo {
			item := &ship.Cargo[i]
			if ok, reason := validator.CheckPointLoad(item); !ok {
				fmt.Printf("  %s %s: %s\n", badStyle.Render("x"), item.ID, reason)
				issues++
			}
			if item.Weight > ship.MaxWeight-ship.LightshipWeight {
				fmt.Printf("  %s %s: weighs %.1f t, more than the ship's %.1f t deadweight\n",
					badStyle.Render("x"), item.ID,
					item.Weight/1000.0, (ship.MaxWeight-ship.LightshipWeight)/1000.0)
				issues++
			}
		}

		total := ship.TotalCargoWeight()
		deadweight := ship.MaxWeight - ship.LightshipWeight
		fmt.Printf("\n  %d items, %.1f t total cargo, %.1f t deadweight capacity\n",
			len(ship.Cargo), total/1000.0, deadweight/1000.0)
		if total > deadweight {
			fmt.Println("  " + badStyle.Render("manifest exceeds deadweight capacity"))
			issues++
		} else if deadweight > 0 && total > 0.9*deadweight {
			fmt.Println("  " + warnStyle.Render("manifest uses more than 90% of deadweight capacity"))
		}

		if issues > 0 {
			fmt.Printf("\n%s\n", badStyle.Render(fmt.Sprintf("%d issue(s) found", issues)))
			os.Exit(1)
		}
		fmt.Println("\n" + okStyle.Render("manifest OK"))
		return nil
	},
}
