package telemetry

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{"time", "lid", "heatsink", "left", "center", "right"}

// CSVWriter streams samples as CSV rows, writing the header before the
// first row. Suited to long captures where losing the tail on an abort
// should not lose the whole file.
type CSVWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

func (c *CSVWriter) Write(s Sample) error {
	if !c.wroteHeader {
		if err := c.w.Write(csvHeader); err != nil {
			return err
		}
		c.wroteHeader = true
	}
	record := []string{
		s.Time.Format(time.RFC3339Nano),
		formatTemp(s.Lid),
		formatTemp(s.Heatsink),
		formatTemp(s.Left),
		formatTemp(s.Center),
		formatTemp(s.Right),
	}
	return c.w.Write(record)
}

// Flush writes buffered rows through to the underlying writer.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

func formatTemp(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV dumps a completed capture in one go.
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := NewCSVWriter(w)
	for _, s := range samples {
		if err := cw.Write(s); err != nil {
			return err
		}
	}
	return cw.Flush()
}

// WriteJSON dumps a completed capture as an indented JSON array.
func WriteJSON(w io.Writer, samples []Sample) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(samples)
}
