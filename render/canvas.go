// Package render draws the game's terminal UI. It is a sink: the game
// loop hands it a read-only Snapshot each frame and it paints the
// screen, owning no simulation state of its own.
package render

import "github.com/gdamore/tcell/v2"

// Canvas wraps a tcell screen with text and box drawing primitives.
type Canvas struct {
	screen tcell.Screen
	width  int
	height int
}

// NewCanvas creates a canvas sized to the screen.
func NewCanvas(screen tcell.Screen) *Canvas {
	c := &Canvas{screen: screen}
	c.width, c.height = screen.Size()
	return c
}

// Resize records new screen dimensions after a resize event.
func (c *Canvas) Resize(width, height int) {
	c.width = width
	c.height = height
}

// Width returns the cell width of the canvas.
func (c *Canvas) Width() int { return c.width }

// Height returns the cell height of the canvas.
func (c *Canvas) Height() int { return c.height }

// SetText draws a string starting at (x, y), clipped to the canvas.
func (c *Canvas) SetText(x, y int, style tcell.Style, text string) {
	if y < 0 || y >= c.height {
		return
	}
	col := x
	for _, r := range text {
		if col >= c.width {
			return
		}
		if col >= 0 {
			c.screen.SetContent(col, y, r, nil, style)
		}
		col++
	}
}

// HLine draws a horizontal run of ch, clipped to the canvas width.
func (c *Canvas) HLine(x, y, length int, ch rune, style tcell.Style) {
	for i := 0; i < length && x+i < c.width; i++ {
		c.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Box draws a single-line frame with the given outer dimensions.
func (c *Canvas) Box(x, y, width, height int, style tcell.Style) {
	if width < 2 || height < 2 {
		return
	}
	c.SetText(x, y, style, "┌")
	c.HLine(x+1, y, width-2, '─', style)
	c.SetText(x+width-1, y, style, "┐")

	for i := 1; i < height-1; i++ {
		c.SetText(x, y+i, style, "│")
		c.SetText(x+width-1, y+i, style, "│")
	}

	c.SetText(x, y+height-1, style, "└")
	c.HLine(x+1, y+height-1, width-2, '─', style)
	c.SetText(x+width-1, y+height-1, style, "┘")
}
