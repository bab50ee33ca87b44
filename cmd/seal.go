/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	thermocycler "github.com/allbin/go-thermocycler"
	"github.com/spf13/cobra"
)

// sealCmd represents the seal command
var sealCmd = &cobra.Command{
	Use:   "seal",
	Short: "Control the seal stepper motor",
	Long: `Control the seal stepper motor.

Subcommands:
  move <steps>        move by a signed step count
  set <param> <value> set a driver parameter

Parameters: velocity, acceleration, stallguard-threshold,
stallguard-min-velocity, run-current, hold-current.

Example usage:
  cycler seal move -2000
  cycler seal set run-current 20`,
}

var sealMoveCmd = &cobra.Command{
	Use:   "move <steps>",
	Short: "Move the seal motor by a signed step count",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		steps := parseIntArg("steps", args[0])

		s := mustOpenSession()
		defer s.Close()

		if err := s.client.MoveSealSteps(steps); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Seal moved by %d steps\n", successStyle.Render("✓"), steps)
	},
}

var sealSetCmd = &cobra.Command{
	Use:   "set <param> <value>",
	Short: "Set a seal driver parameter",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		param, err := thermocycler.ParseSealParam(args[0])
		if err != nil {
			exitErr(err)
		}
		value := parseIntArg("value", args[1])

		s := mustOpenSession()
		defer s.Close()

		if err := s.client.SetSealParam(param, value); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Seal %s set to %d\n", successStyle.Render("✓"), param, value)
	},
}

func init() {
	rootCmd.AddCommand(sealCmd)

	sealCmd.AddCommand(sealMoveCmd)
	sealCmd.AddCommand(sealSetCmd)
}
