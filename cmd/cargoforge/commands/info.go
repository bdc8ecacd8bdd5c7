package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cargoforge/internal/manifest"
	"github.com/piwi3910/cargoforge/internal/model"
)

var infoCmd = &cobra.Command{
	Use:   "info <ship.cfg>",
	Short: "Show ship particulars and compartment layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ship, err := manifest.LoadShip(args[0])
		if err != nil {
			return err
		}

		s := model.DefaultSettings()
		deadweight := ship.MaxWeight - ship.LightshipWeight

		fmt.Println(headingStyle.Render("=== Ship Particulars ==="))
		if ship.Name != "" {
			fmt.Printf("  Name:              %s\n", ship.Name)
		}
		fmt.Printf("  Length x Beam:     %.1f m x %.1f m\n", ship.Length, ship.Width)
		fmt.Printf("  Max weight:        %.1f t\n", ship.MaxWeight/1000.0)
		fmt.Printf("  Lightship:         %.1f t (KG %.1f m)\n", ship.LightshipWeight/1000.0, ship.LightshipKG)
		fmt.Printf("  Deadweight:        %.1f t\n", deadweight/1000.0)

		fmt.Println()
		fmt.Println(headingStyle.Render("COMPARTMENTS"))
		holdLen := ship.Length * s.HoldLengthRatio
		holdWid := ship.Width * s.HoldDepthRatio
		fmt.Printf("  Forward Hold:  %.1f x %.1f x %.1f m, cap %.1f t\n",
			holdLen, holdWid, s.HoldHeight, ship.MaxWeight*s.HoldWeightShare/1000.0)
		fmt.Printf("  Aft Hold:      %.1f x %.1f x %.1f m, cap %.1f t\n",
			holdLen, holdWid, s.HoldHeight, ship.MaxWeight*s.HoldWeightShare/1000.0)
		fmt.Printf("  Deck:          %.1f x %.1f x %.1f m, cap %.1f t\n",
			ship.Length, ship.Width, s.DeckHeight, ship.MaxWeight*s.DeckWeightShare/1000.0)
		return nil
	},
}
