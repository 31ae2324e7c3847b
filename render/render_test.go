package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"econogenesis/zoom"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	screen.SetSize(80, 24)
	return screen
}

// screenText flattens the displayed cells into one searchable string.
func screenText(screen tcell.SimulationScreen) string {
	cells, width, height := screen.GetContents()
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := cells[y*width+x]
			if len(cell.Runes) > 0 {
				b.WriteRune(cell.Runes[0])
			} else {
				b.WriteRune(' ')
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func baseSnapshot() Snapshot {
	return Snapshot{
		Level:       zoom.Galaxy,
		Coords:      zoom.Coord{X: 3, Y: -2},
		Paused:      true,
		Speed:       1.0,
		TimeStr:     "45s",
		Tick:        12,
		EntityName:  "Andromeda Prime",
		EntityCount: 6,
		ShowHelp:    false,
	}
}

func drawOnce(t *testing.T, s Snapshot) string {
	t.Helper()
	screen := newTestScreen(t)
	defer screen.Fini()

	e := NewEngine(screen)
	e.BeginFrame()
	Draw(e.Canvas(), s)
	e.EndFrame()
	return screenText(screen)
}

func TestDrawStatusAndInfo(t *testing.T) {
	text := drawOnce(t, baseSnapshot())

	for _, want := range []string{
		"Econogenesis v0.1.0",
		"Galaxy",
		"[PAUSED]",
		"Simulation Time: 45s",
		"Location: Andromeda Prime",
		"Position: (3, -2)",
		"World: 6 entities | Tick: 12",
		"GALAXY VIEW",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestDrawRunningState(t *testing.T) {
	s := baseSnapshot()
	s.Paused = false
	s.Speed = 5.0
	text := drawOnce(t, s)

	if !strings.Contains(text, "[PLAYING]") {
		t.Error("frame missing [PLAYING]")
	}
	if !strings.Contains(text, "5.0x") {
		t.Error("frame missing speed multiplier")
	}
}

func TestDrawHelpOverlayReplacesView(t *testing.T) {
	s := baseSnapshot()
	s.ShowHelp = true
	text := drawOnce(t, s)

	if !strings.Contains(text, "KEYBOARD CONTROLS") {
		t.Error("help overlay not drawn")
	}
	if strings.Contains(text, "GALAXY VIEW") {
		t.Error("zoom view drawn under help overlay")
	}
}

func TestDrawEveryLevelView(t *testing.T) {
	markers := map[zoom.Level]string{
		zoom.Galaxy:      "GALAXY VIEW",
		zoom.SolarSystem: "SOLAR SYSTEM VIEW",
		zoom.Planet:      "PLANET VIEW",
		zoom.Region:      "REGION VIEW",
		zoom.LocalArea:   "LOCAL AREA VIEW",
		zoom.Room:        "ROOM VIEW",
	}
	for level, marker := range markers {
		s := baseSnapshot()
		s.Level = level
		if text := drawOnce(t, s); !strings.Contains(text, marker) {
			t.Errorf("level %v frame missing %q", level, marker)
		}
	}
}

func TestCanvasClipsAtEdges(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()

	c := NewCanvas(screen)
	// None of these may panic or write out of range.
	c.SetText(75, 1, styleDefault, "overflowing text")
	c.SetText(-3, 2, styleDefault, "left clip")
	c.SetText(0, 100, styleDefault, "below screen")
	c.Box(0, 0, 1, 1, styleDefault)
	c.HLine(70, 3, 40, '─', styleDefault)
	screen.Show()
}
