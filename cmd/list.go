/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	thermocycler "github.com/allbin/go-thermocycler"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidate serial ports",
	Long: `List USB serial ports that could be a thermocycler.

Scans for USB CDC/ACM devices and USB serial adapters, showing the USB
product description and serial number read from sysfs. Ports matching
the discovery filter are marked.

Example usage:
  cycler list
  cycler list --all`,
	Run: func(cmd *cobra.Command, args []string) {
		showAll, _ := cmd.Flags().GetBool("all")

		ports, err := thermocycler.ListPorts()
		if err != nil {
			exitErr(fmt.Errorf("listing ports: %w", err))
		}

		if len(ports) == 0 {
			fmt.Println("No serial ports found")
			return
		}

		headerStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("240")).
			PaddingBottom(1)

		markStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true)

		header := fmt.Sprintf("%-16s %-30s %-20s %s", "Port", "Description", "Serial", "")
		fmt.Println(headerStyle.Render(header))

		shown := 0
		for _, port := range ports {
			info, err := thermocycler.GetPortInfo(port)
			if err != nil {
				continue
			}

			matched := strings.Contains(strings.ToLower(info.Description), "thermocycler")
			if !matched && !showAll {
				continue
			}

			mark := ""
			if matched {
				mark = markStyle.Render("✓ thermocycler")
			}
			fmt.Printf("%-16s %-30s %-20s %s\n", info.Name, info.Description, info.SerialNumber, mark)
			shown++
		}

		if shown == 0 {
			fmt.Fprintln(os.Stderr, "No thermocycler found; run with --all to see every port")
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("all", "a", false, "Show all USB serial ports, not just matching devices")
}
