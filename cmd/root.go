/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	thermocycler "github.com/allbin/go-thermocycler"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cycler",
	Short: "Bench-test harness for thermocycler hardware",
	Long: `cycler drives a thermocycler over its USB serial port for bench
testing: raw actuator control (peltiers, lid heater, fans, hinge, seal,
solenoid), temperature telemetry, and timed capture to CSV or JSON.

The device is found automatically by its USB product description; pass
--port to talk to a specific serial port instead.

Example usage:
  cycler temps
  cycler watch --interval 500ms
  cycler record -i 100ms -f csv -o run.csv
  cycler lid target 105
  cycler peltier 0.5 --direction cool --select all`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cycler.yaml)")
	rootCmd.PersistentFlags().StringP("port", "p", "", "serial port path (default: discover by USB description)")
	rootCmd.PersistentFlags().IntP("baud", "b", 115200, "baud rate")
	rootCmd.PersistentFlags().String("filter", thermocycler.DefaultFilter, "USB description filter used for discovery")

	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("baud", rootCmd.PersistentFlags().Lookup("baud"))
	viper.BindPFlag("filter", rootCmd.PersistentFlags().Lookup("filter"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cycler")
	}

	viper.SetEnvPrefix("cycler")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
