package summary

import (
	"context"
	"log"
	"time"

	"f1telemetrydashboard/pkg/helper"
	"f1telemetrydashboard/pkg/openf1"
	"f1telemetrydashboard/pkg/reference"
)

// driverPacing spaces out per-driver fetch bursts so the remote service is
// not hit with back-to-back request trains.
const driverPacing = 500 * time.Millisecond

// Builder assembles the race summary for the fixed roster.
type Builder struct {
	client *openf1.Client

	// Pacing is the delay between per-driver fetch bursts. Tests zero it.
	Pacing time.Duration
}

func NewBuilder(client *openf1.Client) *Builder {
	return &Builder{client: client, Pacing: driverPacing}
}

// Build fetches identity, laps and stints for every roster driver and folds
// them into one RaceSummary. Drivers whose identity fetch comes back empty
// are omitted. Build honors ctx on the remote calls and the pacing delay,
// so a caller-imposed deadline bounds the whole run.
func (b *Builder) Build(ctx context.Context) RaceSummary {
	result := RaceSummary{
		SessionKey: reference.SessionKey,
		Event:      reference.RaceName,
		Location:   reference.RaceLocation,
		Drivers:    []DriverSummary{},
	}

	for i, driverNumber := range reference.Roster {
		if i > 0 && !b.pause(ctx) {
			log.Printf("summary: canceled after %d drivers: %s", len(result.Drivers), ctx.Err())
			return result
		}

		drivers := b.client.Drivers(ctx, driverNumber)
		if len(drivers) == 0 {
			log.Printf("summary: no identity for driver %d, skipping", driverNumber)
			continue
		}

		laps := b.client.Laps(ctx, driverNumber)
		stints := b.client.Stints(ctx, driverNumber)

		result.Drivers = append(result.Drivers, buildDriverSummary(driverNumber, drivers[0], laps, stints))
	}

	return result
}

// pause waits one pacing interval, returning false if ctx expired first.
func (b *Builder) pause(ctx context.Context) bool {
	if b.Pacing <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(b.Pacing)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func buildDriverSummary(driverNumber int, driver openf1.Driver, laps []openf1.Lap, stints []openf1.Stint) DriverSummary {
	tires := tireMap(stints)

	reports := make([]LapReport, 0, len(laps))
	durations := make([]float64, 0, len(laps))
	for _, lap := range laps {
		if lap.LapDuration == nil || *lap.LapDuration <= 0 {
			continue
		}
		durations = append(durations, *lap.LapDuration)
		reports = append(reports, LapReport{
			LapNumber:   lap.LapNumber,
			LapDuration: helper.Round(*lap.LapDuration, 3),
			Compound:    compoundForLap(tires, lap.LapNumber),
		})
	}

	// One baseline per driver, applied to every lap.
	mean, stdDev := meanStdDev(durations)
	for i := range reports {
		zScore := (durations[i] - mean) / stdDev
		reports[i].ZScore = helper.Round(zScore, 2)
		reports[i].IsAnomaly = isAnomaly(zScore)
	}

	stats := DriverStats{TotalLaps: len(reports)}
	if len(durations) > 0 {
		fastest, slowest := durations[0], durations[0]
		for _, duration := range durations[1:] {
			if duration < fastest {
				fastest = duration
			}
			if duration > slowest {
				slowest = duration
			}
		}
		stats.MeanLapTime = helper.Round(mean, 3)
		stats.StdDev = helper.Round(stdDev, 3)
		stats.FastestLap = helper.Round(fastest, 3)
		stats.SlowestLap = helper.Round(slowest, 3)
	}

	acronym := driver.NameAcronym
	if acronym == "" {
		acronym = "UNK"
	}
	fullName := driver.FullName
	if fullName == "" {
		fullName = "Unknown"
	}
	teamName := driver.TeamName
	if teamName == "" {
		teamName = "Unknown"
	}

	return DriverSummary{
		DriverNumber: driverNumber,
		NameAcronym:  acronym,
		FullName:     fullName,
		TeamName:     teamName,
		TeamColor:    reference.TeamColor(driver.TeamName),
		Laps:         reports,
		Stats:        stats,
	}
}
