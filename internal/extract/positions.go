package extract

import "strings"

// positionTraits describes how a playing position relates to name phonetics:
// how much contact it involves, how much precision and raw power it demands,
// how recognizable the role is, and the harshness level that historically
// aligns with it.
type positionTraits struct {
	Contact          float64
	Precision        float64
	Power            float64
	Recognition      float64
	OptimalHarshness float64
}

// positionTable maps position codes (football, basketball, baseball) to traits
var positionTable = map[string]positionTraits{
	// Football
	"QB": {Contact: 40, Precision: 90, Power: 60, Recognition: 95, OptimalHarshness: 55},
	"RB": {Contact: 95, Precision: 60, Power: 90, Recognition: 75, OptimalHarshness: 75},
	"WR": {Contact: 70, Precision: 80, Power: 65, Recognition: 85, OptimalHarshness: 60},
	"TE": {Contact: 85, Precision: 70, Power: 80, Recognition: 65, OptimalHarshness: 70},
	"OL": {Contact: 100, Precision: 50, Power: 95, Recognition: 30, OptimalHarshness: 80},
	"DL": {Contact: 100, Precision: 45, Power: 100, Recognition: 50, OptimalHarshness: 85},
	"LB": {Contact: 95, Precision: 55, Power: 95, Recognition: 60, OptimalHarshness: 80},
	"CB": {Contact: 75, Precision: 85, Power: 60, Recognition: 70, OptimalHarshness: 60},
	"S":  {Contact: 85, Precision: 75, Power: 75, Recognition: 60, OptimalHarshness: 70},
	"K":  {Contact: 10, Precision: 100, Power: 30, Recognition: 40, OptimalHarshness: 40},
	"P":  {Contact: 10, Precision: 95, Power: 30, Recognition: 25, OptimalHarshness: 40},
	// Basketball
	"PG": {Contact: 50, Precision: 90, Power: 55, Recognition: 85, OptimalHarshness: 55},
	"SG": {Contact: 55, Precision: 85, Power: 60, Recognition: 80, OptimalHarshness: 55},
	"SF": {Contact: 70, Precision: 75, Power: 75, Recognition: 75, OptimalHarshness: 65},
	"PF": {Contact: 85, Precision: 65, Power: 90, Recognition: 70, OptimalHarshness: 75},
	"C":  {Contact: 95, Precision: 60, Power: 95, Recognition: 70, OptimalHarshness: 80},
	// Baseball
	"SP": {Contact: 20, Precision: 95, Power: 55, Recognition: 85, OptimalHarshness: 50},
	"RP": {Contact: 20, Precision: 90, Power: 60, Recognition: 50, OptimalHarshness: 55},
	"1B": {Contact: 55, Precision: 70, Power: 85, Recognition: 70, OptimalHarshness: 70},
	"SS": {Contact: 60, Precision: 90, Power: 55, Recognition: 80, OptimalHarshness: 55},
	"OF": {Contact: 50, Precision: 75, Power: 70, Recognition: 70, OptimalHarshness: 60},
}

// defaultPositionTraits is the fallback for unknown or empty positions
var defaultPositionTraits = positionTraits{
	Contact: 60, Precision: 60, Power: 60, Recognition: 60, OptimalHarshness: 60,
}

// lookupPosition resolves a position string to traits, falling back to the
// neutral defaults for unknown positions. Lookup is case-insensitive.
func lookupPosition(position string) (positionTraits, bool) {
	code := strings.ToUpper(strings.TrimSpace(position))
	if code == "" {
		return defaultPositionTraits, false
	}
	if traits, ok := positionTable[code]; ok {
		return traits, true
	}
	return defaultPositionTraits, false
}
