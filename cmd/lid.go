/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// lidCmd represents the lid command
var lidCmd = &cobra.Command{
	Use:   "lid",
	Short: "Control the lid heater and hinge",
	Long: `Control the lid heater and the hinge motor.

Subcommands:
  target <°C>      set the lid heater target temperature
  off              deactivate the lid heater
  power <0..1>     drive the heater directly at a PWM duty cycle
  hinge <degrees>  move the hinge motor by an angle

Example usage:
  cycler lid target 105
  cycler lid off
  cycler lid power 0.25
  cycler lid hinge -15.5`,
}

var lidTargetCmd = &cobra.Command{
	Use:   "target <temperature>",
	Short: "Set the lid heater target temperature",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		temp := parseFloatArg("temperature", args[0])

		s := mustOpenSession()
		defer s.Close()

		if err := s.client.SetLidTemperature(temp); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Lid target set to %g °C\n", successStyle.Render("✓"), temp)
	},
}

var lidOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Deactivate the lid heater",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := mustOpenSession()
		defer s.Close()

		if err := s.client.DeactivateLid(); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Lid heater deactivated\n", successStyle.Render("✓"))
	},
}

var lidPowerCmd = &cobra.Command{
	Use:   "power <power>",
	Short: "Drive the lid heater directly (0.0 to 1.0)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		power := parseFloatArg("power", args[0])

		s := mustOpenSession()
		defer s.Close()

		if err := s.client.SetHeaterDebug(power); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Lid heater driven at %.0f%%\n", successStyle.Render("✓"), power*100)
	},
}

var lidHingeCmd = &cobra.Command{
	Use:   "hinge <degrees>",
	Short: "Move the lid hinge motor by an angle",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		angle := parseFloatArg("angle", args[0])

		s := mustOpenSession()
		defer s.Close()

		if err := s.client.MoveLidAngle(angle); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Lid hinge moved by %g°\n", successStyle.Render("✓"), angle)
	},
}

func init() {
	rootCmd.AddCommand(lidCmd)

	lidCmd.AddCommand(lidTargetCmd)
	lidCmd.AddCommand(lidOffCmd)
	lidCmd.AddCommand(lidPowerCmd)
	lidCmd.AddCommand(lidHingeCmd)
}
