/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pidCmd represents the pid command
var pidCmd = &cobra.Command{
	Use:   "pid",
	Short: "Set PID constants",
	Long: `Set the PID constants of a thermal control loop.

Subcommands:
  heater   lid heater loop
  peltier  plate peltier loop

Example usage:
  cycler pid heater -P 0.97 -I 0.102 -D 1.901
  cycler pid peltier -P 0.1 -I 0.02 -D 0.3`,
}

var pidHeaterCmd = &cobra.Command{
	Use:   "heater",
	Short: "Set the lid heater PID constants",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p, _ := cmd.Flags().GetFloat64("proportional")
		i, _ := cmd.Flags().GetFloat64("integral")
		d, _ := cmd.Flags().GetFloat64("derivative")

		s := mustOpenSession()
		defer s.Close()

		if err := s.client.SetHeaterPID(p, i, d); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Heater PID set to P=%g I=%g D=%g\n", successStyle.Render("✓"), p, i, d)
	},
}

var pidPeltierCmd = &cobra.Command{
	Use:   "peltier",
	Short: "Set the plate peltier PID constants",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p, _ := cmd.Flags().GetFloat64("proportional")
		i, _ := cmd.Flags().GetFloat64("integral")
		d, _ := cmd.Flags().GetFloat64("derivative")

		s := mustOpenSession()
		defer s.Close()

		if err := s.client.SetPeltierPID(p, i, d); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Peltier PID set to P=%g I=%g D=%g\n", successStyle.Render("✓"), p, i, d)
	},
}

func init() {
	rootCmd.AddCommand(pidCmd)

	pidCmd.AddCommand(pidHeaterCmd)
	pidCmd.AddCommand(pidPeltierCmd)

	for _, c := range []*cobra.Command{pidHeaterCmd, pidPeltierCmd} {
		c.Flags().Float64P("proportional", "P", 0, "Proportional constant")
		c.Flags().Float64P("integral", "I", 0, "Integral constant")
		c.Flags().Float64P("derivative", "D", 0, "Derivative constant")
		c.MarkFlagRequired("proportional")
		c.MarkFlagRequired("integral")
		c.MarkFlagRequired("derivative")
	}
}
