// Package telemetry collects timed temperature samples from a
// thermocycler client and serializes them for offline analysis.
package telemetry

import (
	"context"
	"time"

	thermocycler "github.com/allbin/go-thermocycler"
)

// Sample is one decoded telemetry snapshot.
type Sample struct {
	Time     time.Time `json:"time"`
	Lid      float64   `json:"lid"`
	Heatsink float64   `json:"heatsink"`
	Left     float64   `json:"left"`
	Center   float64   `json:"center"`
	Right    float64   `json:"right"`
}

// Source is the slice of the protocol client the recorder needs.
// *thermocycler.Client satisfies it.
type Source interface {
	LidTemperature() (float64, error)
	PlateTemperatures() (thermocycler.PlateReadings, error)
}

// Recorder samples a Source at a fixed interval. Sampling is strictly
// sequential: the underlying protocol allows one exchange at a time,
// so a slow device stretches the effective interval rather than
// overlapping queries.
type Recorder struct {
	source   Source
	interval time.Duration
}

func NewRecorder(source Source, interval time.Duration) *Recorder {
	return &Recorder{source: source, interval: interval}
}

// Take performs one full telemetry snapshot (two query exchanges).
func (r *Recorder) Take() (Sample, error) {
	lid, err := r.source.LidTemperature()
	if err != nil {
		return Sample{}, err
	}
	plate, err := r.source.PlateTemperatures()
	if err != nil {
		return Sample{}, err
	}
	return Sample{
		Time:     time.Now(),
		Lid:      lid,
		Heatsink: plate.Heatsink,
		Left:     plate.Left,
		Center:   plate.Center,
		Right:    plate.Right,
	}, nil
}

// Run samples until the context is cancelled, passing each sample to
// sink. Context cancellation is a clean stop; any sampling or sink
// error aborts the run.
func (r *Recorder) Run(ctx context.Context, sink func(Sample) error) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		sample, err := r.Take()
		if err != nil {
			return err
		}
		if err := sink(sample); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
