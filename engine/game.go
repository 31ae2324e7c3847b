// Package engine owns the simulation clock and the frame loop that
// orchestrates input, state updates, and rendering.
package engine

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/time/rate"

	"econogenesis/audio"
	"econogenesis/config"
	"econogenesis/input"
	"econogenesis/render"
	"econogenesis/world"
	"econogenesis/zoom"
)

// ErrInputClosed reports that the terminal event stream ended while
// the game was still running. The loop cannot continue without input.
var ErrInputClosed = errors.New("input event stream closed")

// Game is the root object. It exclusively owns every subsystem; all
// mutation happens sequentially from the goroutine running Run.
type Game struct {
	Time  *TimeController
	Zoom  *zoom.Manager
	World *world.World
	Input *input.Handler
	Frame *render.Engine
	Sound *audio.Player

	showHelp bool
	quit     bool
}

// NewGame wires a game over an initialized screen.
func NewGame(cfg *config.Config, screen tcell.Screen, sound *audio.Player) *Game {
	tc := NewTimeController(cfg.TargetFPS, NewMonotonicTimeProvider())
	if !cfg.StartPaused {
		tc.TogglePause()
	}
	return &Game{
		Time:  tc,
		Zoom:  zoom.NewManager(),
		World: world.New(),
		Input: input.NewHandler(screen),
		Frame: render.NewEngine(screen),
		Sound: sound,
	}
}

// Run drives the frame loop until a quit action, input failure, or
// context cancellation. Terminal restoration is the caller's job so
// it happens on every exit path, including panics.
func (g *Game) Run(ctx context.Context) error {
	pacer := rate.NewLimiter(rate.Every(g.Time.TargetFrameDuration()), 1)

	for !g.quit {
		ev := g.Input.Poll()
		switch {
		case ev.Closed:
			return ErrInputClosed
		case ev.Resized:
			g.Frame.Resize(ev.Width, ev.Height)
		default:
			g.dispatch(ev.Action)
		}
		if g.quit {
			break
		}

		delta := g.Time.Step()
		if !g.Time.IsPaused() {
			g.World.Update(delta)
		}

		g.renderFrame()

		// Bounded wait, at most one frame period.
		if err := pacer.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// HelpVisible reports whether the help overlay is shown.
func (g *Game) HelpVisible() bool {
	return g.showHelp
}

func (g *Game) dispatch(a input.Action) {
	switch a {
	case input.ActionQuit:
		g.quit = true
	case input.ActionTogglePause:
		g.Time.TogglePause()
		g.Sound.Confirm()
	case input.ActionIncreaseSpeed:
		g.feedback(g.Time.IncreaseSpeed())
	case input.ActionDecreaseSpeed:
		g.feedback(g.Time.DecreaseSpeed())
	case input.ActionZoomIn:
		g.feedback(g.Zoom.ZoomIn())
	case input.ActionZoomOut:
		g.feedback(g.Zoom.ZoomOut())
	case input.ActionMoveUp:
		g.Zoom.Move(zoom.Up)
	case input.ActionMoveDown:
		g.Zoom.Move(zoom.Down)
	case input.ActionMoveLeft:
		g.Zoom.Move(zoom.Left)
	case input.ActionMoveRight:
		g.Zoom.Move(zoom.Right)
	case input.ActionToggleHelp:
		g.showHelp = !g.showHelp
	case input.ActionEnter, input.ActionNone:
		// Enter needs map data that does not exist yet.
	}
}

func (g *Game) feedback(applied bool) {
	if applied {
		g.Sound.Confirm()
	} else {
		g.Sound.Reject()
	}
}

func (g *Game) renderFrame() {
	level := g.Zoom.CurrentLevel()
	snapshot := render.Snapshot{
		Level:       level,
		Coords:      g.Zoom.CoordsForLevel(level),
		Paused:      g.Time.IsPaused(),
		Speed:       g.Time.SpeedMultiplier(),
		TimeStr:     g.Time.FormatTime(),
		Tick:        g.World.TickCount(),
		EntityName:  g.World.EntityName(level),
		EntityCount: g.World.EntityCount(),
		FPS:         g.Frame.FPS(),
		ShowHelp:    g.showHelp,
	}

	g.Frame.BeginFrame()
	render.Draw(g.Frame.Canvas(), snapshot)
	g.Frame.EndFrame()
}
