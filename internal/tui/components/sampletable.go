package components

import (
	"fmt"

	"github.com/allbin/go-thermocycler/internal/telemetry"
	"github.com/allbin/go-thermocycler/internal/tui/colors"
	"github.com/allbin/go-thermocycler/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
)

const (
	columnTime     = "time"
	columnLid      = "lid"
	columnHeatsink = "heatsink"
	columnLeft     = "left"
	columnCenter   = "center"
	columnRight    = "right"
)

// SampleTable renders recent telemetry samples, newest first.
type SampleTable struct {
	table    table.Model
	samples  []telemetry.Sample
	pageSize int
}

func NewSampleTable(pageSize int) *SampleTable {
	if pageSize < 1 {
		pageSize = 10
	}

	columns := []table.Column{
		table.NewColumn(columnTime, "Time", 14),
		table.NewColumn(columnLid, "Lid °C", 10),
		table.NewColumn(columnHeatsink, "Heatsink °C", 12),
		table.NewColumn(columnLeft, "Left °C", 10),
		table.NewColumn(columnCenter, "Center °C", 10),
		table.NewColumn(columnRight, "Right °C", 10),
	}

	baseStyle := lipgloss.NewStyle().
		Foreground(colors.Text).
		BorderForeground(colors.Surface1).
		Align(lipgloss.Right)

	t := table.New(columns).
		WithBaseStyle(baseStyle).
		WithPageSize(pageSize)

	return &SampleTable{
		table:    t,
		samples:  make([]telemetry.Sample, 0),
		pageSize: pageSize,
	}
}

func (st *SampleTable) Add(sample telemetry.Sample) {
	st.samples = append(st.samples, sample)
	st.refresh()
}

func (st *SampleTable) Clear() {
	st.samples = st.samples[:0]
	st.refresh()
}

func (st *SampleTable) Count() int {
	return len(st.samples)
}

// Samples returns the collected samples in capture order.
func (st *SampleTable) Samples() []telemetry.Sample {
	return st.samples
}

func (st *SampleTable) SetWidth(width int) {
	st.table = st.table.WithTargetWidth(width)
}

func (st *SampleTable) refresh() {
	rows := make([]table.Row, 0, len(st.samples))
	// Newest sample on top so the live reading never scrolls away.
	for i := len(st.samples) - 1; i >= 0; i-- {
		s := st.samples[i]
		rows = append(rows, table.NewRow(table.RowData{
			columnTime:     s.Time.Format("15:04:05.000"),
			columnLid:      tempCell(s.Lid),
			columnHeatsink: tempCell(s.Heatsink),
			columnLeft:     tempCell(s.Left),
			columnCenter:   tempCell(s.Center),
			columnRight:    tempCell(s.Right),
		}))
	}
	st.table = st.table.WithRows(rows)
}

// tempCell colors a reading by how hot it is.
func tempCell(temp float64) table.StyledCell {
	return table.NewStyledCell(fmt.Sprintf("%.1f", temp), styles.TempStyle(temp))
}

func (st *SampleTable) View() string {
	return st.table.View()
}
