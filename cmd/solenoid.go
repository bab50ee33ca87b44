/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// solenoidCmd represents the solenoid command
var solenoidCmd = &cobra.Command{
	Use:   "solenoid <on|off>",
	Short: "Engage or disengage the lid solenoid",
	Long: `Engage or disengage the lid solenoid.

Example usage:
  cycler solenoid on
  cycler solenoid off`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var engaged bool
		switch args[0] {
		case "on":
			engaged = true
		case "off":
			engaged = false
		default:
			exitErr(fmt.Errorf("invalid state %q (valid: on, off)", args[0]))
		}

		s := mustOpenSession()
		defer s.Close()

		if err := s.client.SetSolenoid(engaged); err != nil {
			exitErr(err)
		}
		if engaged {
			fmt.Printf("%s Solenoid engaged\n", successStyle.Render("✓"))
		} else {
			fmt.Printf("%s Solenoid disengaged\n", successStyle.Render("✓"))
		}
	},
}

func init() {
	rootCmd.AddCommand(solenoidCmd)
}
