package zoom

// EntityID identifies a world entity. Ids are allocated by the world at
// construction time and never reused; 0 means "no entity".
type EntityID uint64

// Coord is an integer 2D coordinate within a single zoom level.
type Coord struct {
	X, Y int
}

// Direction is a unit movement within the current level.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Unknown"
}

// Offset returns the coordinate delta for one step in the direction.
func (d Direction) Offset() Coord {
	switch d {
	case Up:
		return Coord{0, -1}
	case Down:
		return Coord{0, 1}
	case Left:
		return Coord{-1, 0}
	case Right:
		return Coord{1, 0}
	}
	return Coord{}
}

// Position tracks where the viewpoint sits at every scale
// simultaneously: one coordinate pair per level, plus the entity
// occupied at each level if any. Coordinates at different levels are
// independent; moving within one level never touches another.
type Position struct {
	coords   [LevelCount]Coord
	entities [LevelCount]EntityID
}

// CoordsFor returns the stored coordinates for level.
func (p *Position) CoordsFor(level Level) Coord {
	return p.coords[level]
}

// SetCoordsFor replaces the stored coordinates for level.
func (p *Position) SetCoordsFor(level Level, c Coord) {
	p.coords[level] = c
}

// EntityAt returns the entity occupied at level, or 0.
func (p *Position) EntityAt(level Level) EntityID {
	return p.entities[level]
}

// SetEntityAt marks the entity occupied at level. Entering and leaving
// entities is future work; this is the storage it will use.
func (p *Position) SetEntityAt(level Level, id EntityID) {
	p.entities[level] = id
}
