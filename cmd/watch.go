/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/allbin/go-thermocycler/internal/telemetry"
	"github.com/allbin/go-thermocycler/internal/tui/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live telemetry dashboard",
	Long: `Watch lid, heatsink and plate temperatures live in the terminal.

Samples at the given interval and shows the readings in a table,
newest on top. Press p to pause sampling, c to clear, q to quit.

Pass --output to write everything collected during the session to a
CSV file on exit.

Example usage:
  cycler watch
  cycler watch --interval 500ms
  cycler watch -i 250ms -o session.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		interval, _ := cmd.Flags().GetDuration("interval")
		outputPath, _ := cmd.Flags().GetString("output")

		s := mustOpenSession()
		defer s.Close()

		recorder := telemetry.NewRecorder(s.client, interval)
		model := models.NewWatchModel(recorder, s.portPath, interval)

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			exitErr(err)
		}
		if err := model.Err(); err != nil {
			exitErr(err)
		}

		samples := model.Samples()
		if outputPath == "" || len(samples) == 0 {
			return
		}

		file, err := os.Create(outputPath)
		if err != nil {
			exitErr(fmt.Errorf("failed to create output file: %w", err))
		}
		defer file.Close()

		if err := telemetry.WriteCSV(file, samples); err != nil {
			exitErr(err)
		}
		fmt.Printf("%s Wrote %d samples to %s\n", successStyle.Render("✓"), len(samples), outputPath)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationP("interval", "i", 500*time.Millisecond, "Sampling interval")
	watchCmd.Flags().StringP("output", "o", "", "Write collected samples to a CSV file on exit")
}
