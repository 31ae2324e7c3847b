package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Engine owns the screen lifecycle within a frame and measures the
// achieved frame rate over a one second window.
type Engine struct {
	screen tcell.Screen
	canvas *Canvas

	frameCount    uint64
	lastFPSUpdate time.Time
	currentFPS    float64
	framesInSpan  int
}

// NewEngine wraps an initialized screen.
func NewEngine(screen tcell.Screen) *Engine {
	return &Engine{
		screen:        screen,
		canvas:        NewCanvas(screen),
		lastFPSUpdate: time.Now(),
	}
}

// Canvas returns the drawing surface.
func (e *Engine) Canvas() *Canvas {
	return e.canvas
}

// Resize propagates new screen dimensions to the canvas.
func (e *Engine) Resize(width, height int) {
	e.canvas.Resize(width, height)
	e.screen.Sync()
}

// BeginFrame prepares the screen for drawing.
func (e *Engine) BeginFrame() {
	e.screen.Clear()
}

// EndFrame flushes the frame to the terminal and samples the frame
// rate.
func (e *Engine) EndFrame() {
	e.screen.Show()
	e.updateFPS()
}

func (e *Engine) updateFPS() {
	e.frameCount++
	e.framesInSpan++

	elapsed := time.Since(e.lastFPSUpdate)
	if elapsed >= time.Second {
		e.currentFPS = float64(e.framesInSpan) / elapsed.Seconds()
		e.framesInSpan = 0
		e.lastFPSUpdate = time.Now()
	}
}

// FPS returns the frame rate measured over the last window.
func (e *Engine) FPS() float64 {
	return e.currentFPS
}

// FrameCount returns the total number of frames flushed.
func (e *Engine) FrameCount() uint64 {
	return e.frameCount
}

// Exit restores the terminal. Must run on every exit path.
func (e *Engine) Exit() {
	e.screen.Fini()
}
