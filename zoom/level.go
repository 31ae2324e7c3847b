package zoom

// Level is one of the six ordered scales of observation, from Room
// (smallest) to Galaxy (largest). The ordering defines adjacency for
// zoom transitions; there is no wraparound at either end.
type Level int

const (
	Room Level = iota
	LocalArea
	Region
	Planet
	SolarSystem
	Galaxy
)

// LevelCount is the number of zoom levels.
const LevelCount = int(Galaxy) + 1

// Levels lists all levels in ascending order.
func Levels() [LevelCount]Level {
	return [LevelCount]Level{Room, LocalArea, Region, Planet, SolarSystem, Galaxy}
}

func (l Level) String() string {
	switch l {
	case Room:
		return "Room"
	case LocalArea:
		return "Local Area"
	case Region:
		return "Region"
	case Planet:
		return "Planet"
	case SolarSystem:
		return "Solar System"
	case Galaxy:
		return "Galaxy"
	}
	return "Unknown"
}

// Scale returns the nominal physical extent of the level. Informational
// only; nothing in the simulation derives from it.
func (l Level) Scale() string {
	switch l {
	case Room:
		return "~10 m"
	case LocalArea:
		return "~1 km"
	case Region:
		return "~1,000 km"
	case Planet:
		return "~10,000 km"
	case SolarSystem:
		return "~100 AU"
	case Galaxy:
		return "~100,000 ly"
	}
	return ""
}

// In returns the next smaller scale. ok is false at Room.
func (l Level) In() (next Level, ok bool) {
	if l == Room {
		return l, false
	}
	return l - 1, true
}

// Out returns the next larger scale. ok is false at Galaxy.
func (l Level) Out() (next Level, ok bool) {
	if l == Galaxy {
		return l, false
	}
	return l + 1, true
}
