/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"

	thermocycler "github.com/allbin/go-thermocycler"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "USB-reset a hung thermocycler",
	Long: `Perform a USB-level reset of the thermocycler.

Useful when firmware wedges mid-test and stops answering commands; the
reset re-enumerates the device without touching the bench wiring.

Requires the usbreset utility (usbutils package) and typically root
permissions.

Example usage:
  sudo cycler reset
  sudo cycler reset --port /dev/ttyACM0
  sudo cycler reset --serial TC2-20240117-A1`,
	Run: func(cmd *cobra.Command, args []string) {
		serialNumber, _ := cmd.Flags().GetString("serial")

		if serialNumber != "" {
			if err := thermocycler.ResetUSBDeviceBySerial(serialNumber); err != nil {
				exitErr(err)
			}
			fmt.Printf("%s Reset device with serial %s\n", successStyle.Render("✓"), serialNumber)
			return
		}

		portPath := viper.GetString("port")
		if portPath == "" {
			found, err := thermocycler.Find(viper.GetString("filter"))
			if err != nil {
				exitErr(err)
			}
			portPath = found
		}

		if err := thermocycler.ResetUSBDevice(portPath); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Reset device on %s\n", successStyle.Render("✓"), portPath)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().StringP("serial", "s", "", "Reset by USB serial number instead of port path")
}
