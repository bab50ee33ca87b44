/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// tempsCmd represents the temps command
var tempsCmd = &cobra.Command{
	Use:   "temps",
	Short: "Read all temperatures once",
	Long: `Read lid, plate and heatsink temperatures in one shot.

Issues the lid query, the per-location plate query and the plate base
query back to back and prints the decoded values. Left, center and
right plate values are front/back thermistor pair averages.

Example usage:
  cycler temps
  cycler temps --port /dev/ttyACM0`,
	Run: func(cmd *cobra.Command, args []string) {
		s := mustOpenSession()
		defer s.Close()

		fmt.Printf("%s Reading %s...\n", infoStyle.Render("⚡"), s.portPath)

		lid, err := s.client.LidTemperature()
		if err != nil {
			exitErr(err)
		}
		plate, err := s.client.PlateTemperatures()
		if err != nil {
			exitErr(err)
		}
		base, err := s.client.PlateTemperature()
		if err != nil {
			exitErr(err)
		}

		fmt.Printf("  Lid:        %6.1f °C\n", lid)
		fmt.Printf("  Plate base: %6.1f °C\n", base)
		fmt.Printf("  Heatsink:   %6.1f °C\n", plate.Heatsink)
		fmt.Printf("  Left:       %6.1f °C\n", plate.Left)
		fmt.Printf("  Center:     %6.1f °C\n", plate.Center)
		fmt.Printf("  Right:      %6.1f °C\n", plate.Right)
	},
}

func init() {
	rootCmd.AddCommand(tempsCmd)
}
