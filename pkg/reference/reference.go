package reference

// Static lookup data for the tracked race session. The tables are built once
// at process start and never mutated.

const (
	SessionKey   = 9558
	RaceName     = "British GP 2024"
	RaceLocation = "Silverstone"
)

// CompoundUnknown is the sentinel compound for laps no stint covers.
const CompoundUnknown = "UNKNOWN"

const neutralColor = "#888888"

// Roster is the fixed, ordered set of driver numbers the summary tracks
// (top 10 at Silverstone 2024).
var Roster = []int{44, 1, 4, 81, 55, 27, 18, 14, 23, 22}

var teamColors = map[string]string{
	"Mercedes":        "#27F4D2",
	"Red Bull Racing": "#3671C6",
	"Ferrari":         "#E8002D",
	"McLaren":         "#FF8000",
	"Alpine":          "#FF87BC",
	"RB":              "#6692FF",
	"Aston Martin":    "#229971",
	"Williams":        "#64C4FF",
	"Kick Sauber":     "#52E252",
	"Haas F1 Team":    "#B6B6B6",
}

var tireColors = map[string]string{
	"SOFT":         "#DC2626",
	"MEDIUM":       "#F59E0B",
	"HARD":         "#4B5563",
	"INTERMEDIATE": "#059669",
	"WET":          "#2563EB",
}

// TeamColor resolves a team name to its display color, falling back to a
// neutral gray for unmapped teams.
func TeamColor(teamName string) string {
	if color, ok := teamColors[teamName]; ok {
		return color
	}
	return neutralColor
}

// TireColor resolves a compound to its display color, falling back to the
// same neutral gray for the unknown sentinel and anything unmapped.
func TireColor(compound string) string {
	if color, ok := tireColors[compound]; ok {
		return color
	}
	return neutralColor
}
