package models

import (
	"time"

	"github.com/allbin/go-thermocycler/internal/telemetry"
	"github.com/allbin/go-thermocycler/internal/tui/components"
	"github.com/allbin/go-thermocycler/internal/tui/keys"
	"github.com/allbin/go-thermocycler/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

type sampleMsg struct {
	sample telemetry.Sample
	err    error
}

// WatchModel is the live telemetry dashboard. One sample is in flight
// at most: each tick issues a single blocking snapshot command and the
// next tick is only scheduled once its result arrives, matching the
// one-exchange-at-a-time protocol underneath.
type WatchModel struct {
	recorder *telemetry.Recorder
	interval time.Duration

	statusBar *components.StatusBar
	table     *components.SampleTable
	keys      keys.WatchKeys
	help      help.Model

	paused  bool
	pending bool // a snapshot command is in flight
	err     error
	width   int
}

func NewWatchModel(recorder *telemetry.Recorder, portPath string, interval time.Duration) *WatchModel {
	return &WatchModel{
		recorder:  recorder,
		interval:  interval,
		statusBar: components.NewStatusBar(portPath, interval),
		table:     components.NewSampleTable(15),
		keys:      keys.NewWatchKeys(),
		help:      help.New(),
	}
}

// Samples returns everything collected during the session, so the
// caller can offer an export after the view closes.
func (m *WatchModel) Samples() []telemetry.Sample {
	return m.table.Samples()
}

func (m *WatchModel) Init() tea.Cmd {
	return m.takeSample()
}

func (m *WatchModel) takeSample() tea.Cmd {
	if m.pending {
		return nil
	}
	m.pending = true
	return func() tea.Msg {
		sample, err := m.recorder.Take()
		return sampleMsg{sample: sample, err: err}
	}
}

func (m *WatchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			m.statusBar.SetSampling(!m.paused)
			if !m.paused {
				return m, m.takeSample()
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.table.Clear()
			m.statusBar.SetCount(0)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.statusBar.SetWidth(msg.Width)
		m.table.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case sampleMsg:
		m.pending = false
		if msg.err != nil {
			// One failed exchange ends the session; the protocol has
			// no retry and a desynced line stream is not recoverable
			// from here.
			m.err = msg.err
			m.statusBar.SetError(msg.err)
			return m, tea.Quit
		}
		m.table.Add(msg.sample)
		m.statusBar.SetCount(m.table.Count())
		return m, m.tick()

	case tickMsg:
		if m.paused {
			return m, nil
		}
		return m, m.takeSample()
	}

	return m, nil
}

func (m *WatchModel) View() string {
	sections := []string{
		m.statusBar.View(),
		styles.ContentBorderStyle.Render(m.table.View()),
		styles.HelpStyle.Render(m.help.View(m.keys)),
	}
	if m.err != nil {
		sections = append(sections, styles.ErrorStyle.Render("✗ "+m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Err reports the failure that ended the session, if any.
func (m *WatchModel) Err() error {
	return m.err
}
