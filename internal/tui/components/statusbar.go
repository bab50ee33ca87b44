package components

import (
	"fmt"
	"time"

	"github.com/allbin/go-thermocycler/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the one-line session summary at the top of the
// watch view: sampling state, port, interval and sample count.
type StatusBar struct {
	portPath string
	interval time.Duration
	width    int

	sampling bool
	count    int
	err      error
}

func NewStatusBar(portPath string, interval time.Duration) *StatusBar {
	return &StatusBar{
		portPath: portPath,
		interval: interval,
		sampling: true,
	}
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func (sb *StatusBar) SetSampling(sampling bool) {
	sb.sampling = sampling
}

func (sb *StatusBar) SetCount(count int) {
	sb.count = count
}

func (sb *StatusBar) SetError(err error) {
	sb.err = err
}

func (sb *StatusBar) View() string {
	terminalWidth := sb.width
	if terminalWidth <= 0 {
		terminalWidth = 80
	}

	// Mode indicator
	var modeStyle lipgloss.Style
	var modeText string
	switch {
	case sb.err != nil:
		modeStyle = lipgloss.NewStyle().
			Foreground(colors.Base).
			Background(colors.Red).
			Bold(true).
			Padding(0, 1)
		modeText = "ERROR"
	case sb.sampling:
		modeStyle = lipgloss.NewStyle().
			Foreground(colors.Base).
			Background(colors.Green).
			Bold(true).
			Padding(0, 1)
		modeText = "SAMPLING"
	default:
		modeStyle = lipgloss.NewStyle().
			Foreground(colors.Base).
			Background(colors.Yellow).
			Bold(true).
			Padding(0, 1)
		modeText = "PAUSED"
	}
	mode := modeStyle.Render(modeText)

	// Port path
	portStyle := lipgloss.NewStyle().
		Foreground(colors.Mauve).
		Bold(true).
		Padding(0, 1)
	port := portStyle.Render(sb.portPath)

	// Session details
	detailStyle := lipgloss.NewStyle().
		Foreground(colors.Subtext0).
		Padding(0, 1)
	details := detailStyle.Render(fmt.Sprintf("⚡ 115200 baud │ every %s │ %d samples",
		sb.interval, sb.count))

	// Clock
	timeStyle := lipgloss.NewStyle().
		Foreground(colors.Subtext1).
		Padding(0, 1)
	clock := timeStyle.Render(time.Now().Format("15:04:05"))

	leftSide := lipgloss.JoinHorizontal(lipgloss.Left, mode, port)
	rightSide := lipgloss.JoinHorizontal(lipgloss.Left, details, clock)

	leftWidth := lipgloss.Width(leftSide)
	rightWidth := lipgloss.Width(rightSide)
	spacerWidth := terminalWidth - leftWidth - rightWidth
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	statusBarStyle := lipgloss.NewStyle().
		Foreground(colors.Text).
		Background(colors.Surface0).
		Width(terminalWidth)

	content := lipgloss.JoinHorizontal(lipgloss.Left, leftSide, spacer, rightSide)
	return statusBarStyle.Render(content)
}
