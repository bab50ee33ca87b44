/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"strings"

	thermocycler "github.com/allbin/go-thermocycler"
	"github.com/spf13/cobra"
)

// peltierCmd represents the peltier command
var peltierCmd = &cobra.Command{
	Use:   "peltier <power>",
	Short: "Drive a peltier bank directly",
	Long: `Drive a peltier bank directly at a PWM duty cycle.

This bypasses the thermal control loop entirely: the selected bank is
driven flat out at the given power until told otherwise. Be careful.

Power is normalized (0.0 to 1.0). Direction is heat or cool. The bank
is left, right, center or all.

Example usage:
  cycler peltier 0.5 --direction cool --select all
  cycler peltier 0.1 -d heat -s left`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		power := parseFloatArg("power", args[0])
		direction, _ := cmd.Flags().GetString("direction")
		selection, _ := cmd.Flags().GetString("select")

		dir, err := parseDirection(direction)
		if err != nil {
			exitErr(err)
		}
		sel, err := parseSelection(selection)
		if err != nil {
			exitErr(err)
		}

		s := mustOpenSession()
		defer s.Close()

		if err := s.client.SetPeltierDebug(power, dir, sel); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Peltier %s driven to %s at %.0f%%\n",
			successStyle.Render("✓"), sel, dir, power*100)
	},
}

func parseDirection(value string) (thermocycler.PeltierDirection, error) {
	switch strings.ToLower(value) {
	case "heat", "h":
		return thermocycler.DirectionHeat, nil
	case "cool", "c":
		return thermocycler.DirectionCool, nil
	default:
		return 0, fmt.Errorf("unknown direction: %s (valid: heat, cool)", value)
	}
}

func parseSelection(value string) (thermocycler.PeltierSelection, error) {
	switch strings.ToLower(value) {
	case "left", "l":
		return thermocycler.PeltierLeft, nil
	case "right", "r":
		return thermocycler.PeltierRight, nil
	case "center", "c":
		return thermocycler.PeltierCenter, nil
	case "all", "a":
		return thermocycler.PeltierAll, nil
	default:
		return 0, fmt.Errorf("unknown peltier selection: %s (valid: left, right, center, all)", value)
	}
}

func init() {
	rootCmd.AddCommand(peltierCmd)

	peltierCmd.Flags().StringP("direction", "d", "heat", "Drive direction: heat, cool")
	peltierCmd.Flags().StringP("select", "s", "all", "Peltier bank: left, right, center, all")
}
