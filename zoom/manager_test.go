package zoom

import "testing"

func TestLevelInTransitions(t *testing.T) {
	cases := []struct {
		from Level
		want Level
		ok   bool
	}{
		{Galaxy, SolarSystem, true},
		{SolarSystem, Planet, true},
		{Planet, Region, true},
		{Region, LocalArea, true},
		{LocalArea, Room, true},
		{Room, Room, false},
	}
	for _, c := range cases {
		got, ok := c.from.In()
		if got != c.want || ok != c.ok {
			t.Errorf("%v.In() = (%v, %v), want (%v, %v)", c.from, got, ok, c.want, c.ok)
		}
	}
}

func TestLevelOutTransitions(t *testing.T) {
	cases := []struct {
		from Level
		want Level
		ok   bool
	}{
		{Room, LocalArea, true},
		{LocalArea, Region, true},
		{Region, Planet, true},
		{Planet, SolarSystem, true},
		{SolarSystem, Galaxy, true},
		{Galaxy, Galaxy, false},
	}
	for _, c := range cases {
		got, ok := c.from.Out()
		if got != c.want || ok != c.ok {
			t.Errorf("%v.Out() = (%v, %v), want (%v, %v)", c.from, got, ok, c.want, c.ok)
		}
	}
}

func TestLevelsOrderedCorrectly(t *testing.T) {
	if !(Room < LocalArea && LocalArea < Region && Region < Planet &&
		Planet < SolarSystem && SolarSystem < Galaxy) {
		t.Error("levels are not in ascending order")
	}
}

func TestManagerStartsAtGalaxy(t *testing.T) {
	m := NewManager()
	if m.CurrentLevel() != Galaxy {
		t.Errorf("start level = %v, want Galaxy", m.CurrentLevel())
	}
}

func TestManagerWalksFullOrder(t *testing.T) {
	m := NewManager()

	if m.ZoomOut() {
		t.Error("ZoomOut at Galaxy should return false")
	}
	if m.CurrentLevel() != Galaxy {
		t.Errorf("level changed on rejected ZoomOut: %v", m.CurrentLevel())
	}

	want := []Level{SolarSystem, Planet, Region, LocalArea, Room}
	for _, w := range want {
		if !m.ZoomIn() {
			t.Fatalf("ZoomIn toward %v returned false", w)
		}
		if m.CurrentLevel() != w {
			t.Fatalf("level = %v, want %v", m.CurrentLevel(), w)
		}
	}

	if m.ZoomIn() {
		t.Error("ZoomIn at Room should return false")
	}
	if m.CurrentLevel() != Room {
		t.Errorf("level changed on rejected ZoomIn: %v", m.CurrentLevel())
	}
}

func TestManagerNeverLeavesRange(t *testing.T) {
	m := NewManager()
	// Arbitrary stomping on both boundaries.
	seq := []bool{true, true, true, true, true, true, true, true, false, false, false, false, false, false, false, false, true, false, true}
	for _, in := range seq {
		if in {
			m.ZoomIn()
		} else {
			m.ZoomOut()
		}
		l := m.CurrentLevel()
		if l < Room || l > Galaxy {
			t.Fatalf("level %d out of range", l)
		}
	}
}

func TestMoveOnlyTouchesCurrentLevel(t *testing.T) {
	m := NewManager()
	m.ZoomIn() // SolarSystem

	m.Move(Right)
	m.Move(Right)
	m.Move(Down)

	if got := m.CoordsForLevel(SolarSystem); got != (Coord{2, 1}) {
		t.Errorf("SolarSystem coords = %+v, want {2 1}", got)
	}
	for _, l := range Levels() {
		if l == SolarSystem {
			continue
		}
		if got := m.CoordsForLevel(l); got != (Coord{}) {
			t.Errorf("%v coords = %+v, want zero", l, got)
		}
	}
}

func TestMoveInverseDirectionsCancel(t *testing.T) {
	m := NewManager()
	start := m.CoordsForLevel(m.CurrentLevel())

	if !m.Move(Up) {
		t.Error("Move(Up) returned false")
	}
	m.Move(Down)
	if got := m.CoordsForLevel(m.CurrentLevel()); got != start {
		t.Errorf("Up then Down: coords = %+v, want %+v", got, start)
	}

	m.Move(Left)
	m.Move(Right)
	if got := m.CoordsForLevel(m.CurrentLevel()); got != start {
		t.Errorf("Left then Right: coords = %+v, want %+v", got, start)
	}
}

func TestCoordsSurviveLevelChanges(t *testing.T) {
	m := NewManager()
	m.SetCoordsForLevel(Planet, Coord{7, -3})

	m.ZoomIn()
	m.ZoomIn() // now Planet
	if got := m.CoordsForLevel(Planet); got != (Coord{7, -3}) {
		t.Errorf("Planet coords after transitions = %+v, want {7 -3}", got)
	}

	m.Move(Left)
	m.ZoomOut()
	m.ZoomIn()
	if got := m.CoordsForLevel(Planet); got != (Coord{6, -3}) {
		t.Errorf("Planet coords after re-entry = %+v, want {6 -3}", got)
	}
}

func TestDirectionOffsets(t *testing.T) {
	cases := []struct {
		dir  Direction
		want Coord
	}{
		{Up, Coord{0, -1}},
		{Down, Coord{0, 1}},
		{Left, Coord{-1, 0}},
		{Right, Coord{1, 0}},
	}
	for _, c := range cases {
		if got := c.dir.Offset(); got != c.want {
			t.Errorf("%v.Offset() = %+v, want %+v", c.dir, got, c.want)
		}
	}
}

func TestEntityMarkers(t *testing.T) {
	m := NewManager()
	if m.CurrentEntityID(Planet) != 0 {
		t.Error("expected no occupied entity at start")
	}
	m.SetCurrentEntityID(Planet, 3)
	if m.CurrentEntityID(Planet) != 3 {
		t.Errorf("Planet entity = %d, want 3", m.CurrentEntityID(Planet))
	}
	if m.CurrentEntityID(Region) != 0 {
		t.Error("marker leaked across levels")
	}
}
