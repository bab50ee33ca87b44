/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/allbin/go-thermocycler/internal/telemetry"
	"github.com/spf13/cobra"
)

// recordCmd represents the record command
var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record telemetry to CSV or JSON",
	Long: `Sample lid, heatsink and plate temperatures at a fixed interval
and write them to a file for later analysis. Runs until interrupted
(Ctrl+C).

CSV output is streamed row by row so an aborted run keeps everything
captured so far; JSON output is collected and written on shutdown.

Example usage:
  cycler record -o run.csv
  cycler record -i 100ms -f json -o run.json
  cycler record --interval 1s`,
	Run: func(cmd *cobra.Command, args []string) {
		interval, _ := cmd.Flags().GetDuration("interval")
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		if format != "csv" && format != "json" {
			exitErr(fmt.Errorf("unknown format %q (valid: csv, json)", format))
		}

		out := os.Stdout
		if outputPath != "" {
			file, err := os.Create(outputPath)
			if err != nil {
				exitErr(fmt.Errorf("failed to create output file: %w", err))
			}
			defer file.Close()
			out = file
		}

		s := mustOpenSession()
		defer s.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigChan
			fmt.Fprintf(os.Stderr, "\nReceived interrupt signal, shutting down...\n")
			cancel()
		}()

		fmt.Fprintf(os.Stderr, "%s Recording from %s every %s\n", infoStyle.Render("⚡"), s.portPath, interval)
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop\n\n")

		recorder := telemetry.NewRecorder(s.client, interval)
		startTime := time.Now()
		count := 0

		var runErr error
		switch format {
		case "csv":
			cw := telemetry.NewCSVWriter(out)
			runErr = recorder.Run(ctx, func(sample telemetry.Sample) error {
				count++
				if err := cw.Write(sample); err != nil {
					return err
				}
				return cw.Flush()
			})
		case "json":
			var samples []telemetry.Sample
			runErr = recorder.Run(ctx, func(sample telemetry.Sample) error {
				count++
				samples = append(samples, sample)
				return nil
			})
			if runErr == nil {
				runErr = telemetry.WriteJSON(out, samples)
			}
		}
		if runErr != nil {
			exitErr(runErr)
		}

		duration := time.Since(startTime)
		fmt.Fprintf(os.Stderr, "\n%s Recorded %d samples in %v\n",
			successStyle.Render("✓"), count, duration.Round(time.Millisecond))
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.Flags().DurationP("interval", "i", 100*time.Millisecond, "Sampling interval")
	recordCmd.Flags().StringP("format", "f", "csv", "Output format: csv, json")
	recordCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
}
