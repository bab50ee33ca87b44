/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// fanCmd represents the fan command
var fanCmd = &cobra.Command{
	Use:   "fan <power>",
	Short: "Set the heatsink fan power",
	Long: `Set the heatsink fan to a manual PWM duty cycle (0.0 to 1.0),
or hand control back to the firmware with "auto". Manual full power is
loud.

Example usage:
  cycler fan 0.35
  cycler fan auto`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustOpenSession()
		defer s.Close()

		if args[0] == "auto" {
			if err := s.client.SetFansAutomatic(); err != nil {
				exitErr(err)
			}
			fmt.Printf("%s Fans set to automatic\n", successStyle.Render("✓"))
			return
		}

		power := parseFloatArg("power", args[0])
		if err := s.client.SetFansManual(power); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Fan PWM set to %.0f%%\n", successStyle.Render("✓"), power*100)
	},
}

func init() {
	rootCmd.AddCommand(fanCmd)
}
