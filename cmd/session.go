/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"

	thermocycler "github.com/allbin/go-thermocycler"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// Shared output styles for command feedback
var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// session bundles the open port with the protocol client built on it.
type session struct {
	client   *thermocycler.Client
	port     thermocycler.Port
	portPath string
}

func (s *session) Close() {
	s.port.Close()
}

// openSession opens the configured port, discovering one by USB
// description when --port is not set.
func openSession() (*session, error) {
	portPath := viper.GetString("port")
	if portPath == "" {
		found, err := thermocycler.Find(viper.GetString("filter"))
		if err != nil {
			return nil, err
		}
		portPath = found
	}

	port, err := thermocycler.Open(portPath, thermocycler.WithBaudRate(viper.GetInt("baud")))
	if err != nil {
		return nil, err
	}

	return &session{
		client:   thermocycler.NewClient(port),
		port:     port,
		portPath: portPath,
	}, nil
}

// mustOpenSession opens a session or exits with a styled error.
func mustOpenSession() *session {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("✗"), err)
		os.Exit(1)
	}
	return s
}

// exitErr prints a styled error and terminates the command.
func exitErr(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("✗"), err)
	os.Exit(1)
}

// parseFloatArg parses a positional float argument or exits.
func parseFloatArg(name, value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		exitErr(fmt.Errorf("invalid %s %q: %v", name, value, err))
	}
	return f
}

// parseIntArg parses a positional integer argument or exits.
func parseIntArg(name, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		exitErr(fmt.Errorf("invalid %s %q: %v", name, value, err))
	}
	return n
}
