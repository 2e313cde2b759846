package telemetry

import (
	"context"

	"f1telemetrydashboard/pkg/openf1"
)

const (
	// samplesPerSecond estimates how many car-data readings the source
	// produces per second of lap time; together with the lap duration it
	// bounds a stream that has no explicit per-lap end marker.
	samplesPerSecond = 5
	// decimationFactor keeps every Nth sample to cap the payload size.
	decimationFactor = 3
	// defaultLapDuration stands in when the lap record carries no duration.
	defaultLapDuration = 120.0
)

const (
	errLapNotFound       = "Lap data not found"
	errStartTimeNotFound = "Lap start time not found"
	errTelemetryNotFound = "Car telemetry data not found"
)

// Extractor resolves one (driver, lap) pair to a decimated telemetry trace.
type Extractor struct {
	client *openf1.Client
}

func NewExtractor(client *openf1.Client) *Extractor {
	return &Extractor{client: client}
}

func (e *Extractor) Extract(ctx context.Context, driverNumber, lapNumber int) Trace {
	trace := Trace{
		DriverNumber: driverNumber,
		LapNumber:    lapNumber,
		Telemetry:    []Point{},
	}

	laps := e.client.Lap(ctx, driverNumber, lapNumber)
	if len(laps) == 0 {
		trace.Error = errLapNotFound
		return trace
	}

	lap := laps[0]
	if lap.DateStart == "" {
		trace.Error = errStartTimeNotFound
		return trace
	}

	lapDuration := defaultLapDuration
	if lap.LapDuration != nil && *lap.LapDuration > 0 {
		lapDuration = *lap.LapDuration
	}

	samples := e.client.CarData(ctx, driverNumber, lap.DateStart)
	if len(samples) == 0 {
		trace.Error = errTelemetryNotFound
		return trace
	}

	maxPoints := int(lapDuration * samplesPerSecond)
	if len(samples) > maxPoints {
		samples = samples[:maxPoints]
	}

	for i := 0; i < len(samples); i += decimationFactor {
		sample := samples[i]
		trace.Telemetry = append(trace.Telemetry, Point{
			Date:     sample.Date,
			Speed:    sample.Speed,
			RPM:      sample.RPM,
			Gear:     sample.Gear,
			Throttle: sample.Throttle,
			Brake:    sample.Brake,
			DRS:      sample.DRS,
		})
	}
	trace.TotalPoints = len(trace.Telemetry)

	return trace
}
