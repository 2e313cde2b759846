package openf1

// Record shapes returned by the OpenF1 REST resources. Fields the API may
// leave null are pointers so absence is distinguishable from zero.

type Driver struct {
	DriverNumber int    `json:"driver_number"`
	NameAcronym  string `json:"name_acronym"`
	FullName     string `json:"full_name"`
	TeamName     string `json:"team_name"`
}

type Lap struct {
	LapNumber   int      `json:"lap_number"`
	LapDuration *float64 `json:"lap_duration"`
	DateStart   string   `json:"date_start"`
}

type Stint struct {
	Compound string `json:"compound"`
	LapStart *int   `json:"lap_start"`
	LapEnd   *int   `json:"lap_end"`
}

type CarSample struct {
	Date     string  `json:"date"`
	Speed    float64 `json:"speed"`
	RPM      float64 `json:"rpm"`
	Gear     int     `json:"n_gear"`
	Throttle float64 `json:"throttle"`
	Brake    float64 `json:"brake"`
	DRS      int     `json:"drs"`
}
