package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"f1telemetrydashboard/pkg/helper"
	"f1telemetrydashboard/pkg/summary"
)

const (
	tableLap      = "LAP"
	tableTime     = "TIME"
	tableCompound = "TIRE"
	tableDiff     = "DIFF"
	tableFlag     = "FLAG"
)

// RaceSummary writes one table per driver to w, laps in fetch order with
// the gap to the driver's fastest lap and the anomaly flag.
func RaceSummary(w io.Writer, s summary.RaceSummary) {
	fmt.Fprintf(w, "%s / %s\n\n", s.Event, s.Location)

	for _, driver := range s.Drivers {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleRounded)
		t.SetTitle(fmt.Sprintf("%2d %s (%s) | %s", driver.DriverNumber, driver.FullName, driver.NameAcronym, driver.TeamName))
		t.AppendHeader(table.Row{tableLap, tableTime, tableCompound, tableDiff, tableFlag})

		for _, lap := range driver.Laps {
			flag := ""
			if lap.IsAnomaly {
				flag = fmt.Sprintf("z=%.2f", lap.ZScore)
			}
			t.AppendRow(table.Row{
				lap.LapNumber,
				helper.SecondsToMinutes(lap.LapDuration),
				lap.Compound,
				helper.SecondsToDiff(lap.LapDuration - driver.Stats.FastestLap),
				flag,
			})
		}

		t.AppendSeparator()
		t.AppendFooter(table.Row{
			fmt.Sprintf("%d laps", driver.Stats.TotalLaps),
			helper.SecondsToMinutes(driver.Stats.FastestLap),
			"",
			fmt.Sprintf("avg %s", helper.SecondsToMinutes(driver.Stats.MeanLapTime)),
			"",
		})
		t.Render()
		fmt.Fprintln(w)
	}
}
