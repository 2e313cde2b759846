package summary

type LapReport struct {
	LapNumber   int     `json:"lap_number"`
	LapDuration float64 `json:"lap_duration"`
	Compound    string  `json:"compound"`
	IsAnomaly   bool    `json:"is_anomaly"`
	ZScore      float64 `json:"z_score"`
}

type DriverStats struct {
	TotalLaps   int     `json:"total_laps"`
	MeanLapTime float64 `json:"mean_lap_time"`
	StdDev      float64 `json:"std_dev"`
	FastestLap  float64 `json:"fastest_lap"`
	SlowestLap  float64 `json:"slowest_lap"`
}

type DriverSummary struct {
	DriverNumber int         `json:"driver_number"`
	NameAcronym  string      `json:"name_acronym"`
	FullName     string      `json:"full_name"`
	TeamName     string      `json:"team_name"`
	TeamColor    string      `json:"team_color"`
	Laps         []LapReport `json:"laps"`
	Stats        DriverStats `json:"stats"`
}

// RaceSummary is the top-level aggregate: race identity plus one bundle per
// roster driver, in roster order minus omissions.
type RaceSummary struct {
	SessionKey int             `json:"session_key"`
	Event      string          `json:"event"`
	Location   string          `json:"location"`
	Drivers    []DriverSummary `json:"drivers"`
}
