package input

import "github.com/gdamore/tcell/v2"

// Event is the result of one poll: either a decoded action, a screen
// resize, or notice that the event source has closed.
type Event struct {
	Action        Action
	Resized       bool
	Width, Height int
	Closed        bool
}

// Handler pumps terminal events into a channel so the game loop can
// poll without blocking. tcell's PollEvent blocks, so the pump runs on
// its own goroutine; game state is still only touched from the loop
// goroutine that calls Poll.
type Handler struct {
	events <-chan tcell.Event
	table  *KeyTable
}

// NewHandler starts the event pump for the given screen.
func NewHandler(screen tcell.Screen) *Handler {
	ch := make(chan tcell.Event, 16)
	go func() {
		defer close(ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized or event stream broken.
				return
			}
			ch <- ev
		}
	}()
	return newHandler(ch)
}

func newHandler(events <-chan tcell.Event) *Handler {
	return &Handler{events: events, table: DefaultKeyTable()}
}

// Poll returns at most one pending event without blocking. Events
// beyond the first stay buffered for subsequent frames, preserving
// one-action-per-frame ordering. An empty queue yields ActionNone.
func (h *Handler) Poll() Event {
	select {
	case ev, ok := <-h.events:
		if !ok {
			return Event{Closed: true}
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return Event{Action: h.table.Lookup(ev)}
		case *tcell.EventResize:
			w, hgt := ev.Size()
			return Event{Resized: true, Width: w, Height: hgt}
		}
		return Event{}
	default:
		return Event{}
	}
}
