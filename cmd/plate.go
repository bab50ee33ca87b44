/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// plateCmd represents the plate command
var plateCmd = &cobra.Command{
	Use:   "plate",
	Short: "Control the plate thermal target",
	Long: `Control the plate peltier thermal target.

Subcommands:
  target <°C>  set the plate target temperature
  off          deactivate the plate

Example usage:
  cycler plate target 94.5
  cycler plate off`,
}

var plateTargetCmd = &cobra.Command{
	Use:   "target <temperature>",
	Short: "Set the plate target temperature",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		temp := parseFloatArg("temperature", args[0])

		s := mustOpenSession()
		defer s.Close()

		if err := s.client.SetPlateTemperature(temp); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Plate target set to %g °C\n", successStyle.Render("✓"), temp)
	},
}

var plateOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Deactivate the plate",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := mustOpenSession()
		defer s.Close()

		if err := s.client.DeactivatePlate(); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Plate deactivated\n", successStyle.Render("✓"))
	},
}

func init() {
	rootCmd.AddCommand(plateCmd)

	plateCmd.AddCommand(plateTargetCmd)
	plateCmd.AddCommand(plateOffCmd)
}
