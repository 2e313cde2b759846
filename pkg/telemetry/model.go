package telemetry

// Point is one decimated car-data reading.
type Point struct {
	Date     string  `json:"date"`
	Speed    float64 `json:"speed"`
	RPM      float64 `json:"rpm"`
	Gear     int     `json:"gear"`
	Throttle float64 `json:"throttle"`
	Brake    float64 `json:"brake"`
	DRS      int     `json:"drs"`
}

// Trace is the result of one extraction. Error is set (and Telemetry left
// empty) when the lap or its car data cannot be resolved; callers must
// check it before trusting the samples.
type Trace struct {
	DriverNumber int     `json:"driver_number"`
	LapNumber    int     `json:"lap_number"`
	Telemetry    []Point `json:"telemetry"`
	TotalPoints  int     `json:"total_points"`
	Error        string  `json:"error,omitempty"`
}
