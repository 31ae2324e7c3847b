package zoom

// Manager owns the current zoom level and the per-level position. All
// transitions saturate at the Room/Galaxy boundaries; boundary hits are
// reported as false results, not errors.
type Manager struct {
	current  Level
	position Position
}

// NewManager returns a manager starting at Galaxy with zeroed
// coordinates at every level.
func NewManager() *Manager {
	return &Manager{current: Galaxy}
}

// CurrentLevel returns the active zoom level.
func (m *Manager) CurrentLevel() Level {
	return m.current
}

// Position returns the per-level position record.
func (m *Manager) Position() *Position {
	return &m.position
}

// ZoomIn moves one level toward Room. Returns false at Room.
func (m *Manager) ZoomIn() bool {
	next, ok := m.current.In()
	if !ok {
		return false
	}
	m.current = next
	return true
}

// ZoomOut moves one level toward Galaxy. Returns false at Galaxy.
func (m *Manager) ZoomOut() bool {
	next, ok := m.current.Out()
	if !ok {
		return false
	}
	m.current = next
	return true
}

// Move shifts the current level's coordinates one step in the given
// direction. No map data constrains positions yet, so movement always
// succeeds.
func (m *Manager) Move(dir Direction) bool {
	c := m.position.coords[m.current]
	off := dir.Offset()
	m.position.coords[m.current] = Coord{c.X + off.X, c.Y + off.Y}
	return true
}

// CoordsForLevel returns the stored coordinates for any level,
// regardless of which level is current.
func (m *Manager) CoordsForLevel(level Level) Coord {
	return m.position.CoordsFor(level)
}

// SetCoordsForLevel replaces the stored coordinates for any level.
func (m *Manager) SetCoordsForLevel(level Level, c Coord) {
	m.position.SetCoordsFor(level, c)
}

// CurrentEntityID returns the entity occupied at level, or 0 if none.
func (m *Manager) CurrentEntityID(level Level) EntityID {
	return m.position.EntityAt(level)
}

// SetCurrentEntityID marks the entity occupied at level.
func (m *Manager) SetCurrentEntityID(level Level, id EntityID) {
	m.position.SetEntityAt(level, id)
}
