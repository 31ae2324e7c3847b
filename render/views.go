package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"econogenesis/zoom"
)

// Snapshot is the read-only view of game state drawn each frame. The
// game loop fills it; nothing here mutates simulation state.
type Snapshot struct {
	Level       zoom.Level
	Coords      zoom.Coord
	Paused      bool
	Speed       float64
	TimeStr     string
	Tick        uint64
	EntityName  string
	EntityCount int
	FPS         float64
	ShowHelp    bool
}

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePaused  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePlaying = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Draw paints one full frame from the snapshot.
func Draw(c *Canvas, s Snapshot) {
	width, height := c.Width(), c.Height()

	// Header bar.
	c.Box(0, 0, width, 3, styleDefault)
	c.SetText(2, 1, styleTitle, "Econogenesis v0.1.0")
	pauseStyle, pauseText := stylePlaying, "[PLAYING]"
	if s.Paused {
		pauseStyle, pauseText = stylePaused, "[PAUSED]"
	}
	status := fmt.Sprintf("| %s | %s %.1fx | FPS: %.1f", s.Level, pauseText, s.Speed, s.FPS)
	c.SetText(22, 1, pauseStyle, status)

	// Content area.
	contentY := 4
	contentHeight := height - contentY - 2
	c.Box(0, contentY, width, contentHeight, styleDefault)

	if s.ShowHelp {
		drawHelpOverlay(c, contentY)
	} else {
		infoY := contentY + 2
		c.SetText(2, infoY, styleDefault, fmt.Sprintf("Simulation Time: %s", s.TimeStr))
		c.SetText(2, infoY+1, styleDefault, fmt.Sprintf("Location: %s (%s)", s.EntityName, s.Level.Scale()))
		c.SetText(2, infoY+2, styleDefault, fmt.Sprintf("Position: (%d, %d)", s.Coords.X, s.Coords.Y))
		c.SetText(2, infoY+3, styleDefault, fmt.Sprintf("World: %d entities | Tick: %d", s.EntityCount, s.Tick))
		drawZoomView(c, contentY, s.Level)
	}

	// Footer hint line.
	statusY := height - 2
	c.Box(0, statusY, width, 2, styleDefault)
	c.SetText(2, statusY+1, styleDim,
		"[SPACE] Play/Pause | [+/-] Speed | [Z/X] Zoom | [Arrows] Move | [H/?] Help | [Q] Quit")
}

func drawHelpOverlay(c *Canvas, contentY int) {
	lines := []string{
		"╔══════════════════════════════════════╗",
		"║          KEYBOARD CONTROLS           ║",
		"╠══════════════════════════════════════╣",
		"║  SPACE     Play/Pause simulation     ║",
		"║  +/=       Increase time speed       ║",
		"║  -/_       Decrease time speed       ║",
		"║  Z         Zoom in                   ║",
		"║  X         Zoom out                  ║",
		"║  Arrows    Move within level         ║",
		"║  ENTER     Enter location (soon)     ║",
		"║  H/?       Toggle this help          ║",
		"║  Q/ESC     Quit application          ║",
		"╠══════════════════════════════════════╣",
		"║  Press H or ? to close this help     ║",
		"╚══════════════════════════════════════╝",
	}
	for i, line := range lines {
		c.SetText(2, contentY+2+i, styleHelp, line)
	}
}

// zoomViews holds the placeholder scene art per level, drawn until
// real map content exists.
var zoomViews = map[zoom.Level][]string{
	zoom.Galaxy: {
		"╔════════════════════════════════════╗",
		"║      GALAXY VIEW                   ║",
		"║                                    ║",
		"║        *   ·    *                  ║",
		"║    ·       ⊙        ·              ║",
		"║  *    ·  YOU   *    ·    *         ║",
		"║         *       ·                  ║",
		"║    ·               *    ·          ║",
		"║                                    ║",
		"╚════════════════════════════════════╝",
	},
	zoom.SolarSystem: {
		"╔════════════════════════════════════╗",
		"║    SOLAR SYSTEM VIEW               ║",
		"║                                    ║",
		"║              ☉                     ║",
		"║         o                          ║",
		"║     o       YOU   O                ║",
		"║   o                    o           ║",
		"║                                    ║",
		"║                  O                 ║",
		"╚════════════════════════════════════╝",
	},
	zoom.Planet: {
		"╔════════════════════════════════════╗",
		"║      PLANET VIEW                   ║",
		"║                                    ║",
		"║        ~~~~~  ~~~~                 ║",
		"║    ~~~~       ^^^^  ~~~            ║",
		"║  ~~~    ^^^^ YOU ^^^^   ~~~        ║",
		"║    ^^^^       ~~~~                 ║",
		"║       ^^^^  ~~~~~   ^^^^           ║",
		"║                                    ║",
		"╚════════════════════════════════════╝",
	},
	zoom.Region: {
		"╔════════════════════════════════════╗",
		"║      REGION VIEW                   ║",
		"║                                    ║",
		"║   ♣  ♠  ♣                          ║",
		"║  ♠ ♣    ♠  ♣                       ║",
		"║   ♣  ♠ YOU  ♣  ♠                   ║",
		"║  ♠    ♣  ♠    ♣                    ║",
		"║   ♣  ♠    ♣  ♠                     ║",
		"║                                    ║",
		"╚════════════════════════════════════╝",
	},
	zoom.LocalArea: {
		"╔════════════════════════════════════╗",
		"║    LOCAL AREA VIEW                 ║",
		"║                                    ║",
		"║   ▓▓▓▓     ▓▓▓                     ║",
		"║   ▓  ▓     ▓ ▓                     ║",
		"║   ▓  ▓  @ YOU                      ║",
		"║   ▓▓▓▓     ▓▓▓                     ║",
		"║            ▓ ▓                     ║",
		"║                                    ║",
		"╚════════════════════════════════════╝",
	},
	zoom.Room: {
		"╔════════════════════════════════════╗",
		"║       ROOM VIEW                    ║",
		"║  ┌──────────────────┐              ║",
		"║  │                  │              ║",
		"║  │  [Table]         │              ║",
		"║  │         @ YOU    │              ║",
		"║  │                  │              ║",
		"║  │      [Chair]     │              ║",
		"║  └──────────────────┘              ║",
		"╚════════════════════════════════════╝",
	},
}

func drawZoomView(c *Canvas, contentY int, level zoom.Level) {
	viewY := contentY + 7
	for i, line := range zoomViews[level] {
		c.SetText(2, viewY+i, styleDefault, line)
	}
}
