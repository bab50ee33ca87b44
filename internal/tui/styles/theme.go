package styles

import (
	"github.com/allbin/go-thermocycler/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Content area styles
	ContentBorderStyle = lipgloss.NewStyle().
				BorderTop(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colors.Surface1)

	// Error styles
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Red)

	// Help footer style
	HelpStyle = lipgloss.NewStyle().
			Foreground(colors.Subtext0)
)

// Temperature highlight thresholds, tuned to what matters on a
// thermocycler bench: ambient plate, active ramp, lid at sealing heat.
var (
	TempCoolStyle = lipgloss.NewStyle().Foreground(colors.Sky)
	TempWarmStyle = lipgloss.NewStyle().Foreground(colors.Peach)
	TempHotStyle  = lipgloss.NewStyle().Foreground(colors.Red)
)

// TempStyle picks a highlight style for a temperature in degrees C.
func TempStyle(temp float64) lipgloss.Style {
	switch {
	case temp >= 70.0:
		return TempHotStyle
	case temp >= 40.0:
		return TempWarmStyle
	default:
		return TempCoolStyle
	}
}
