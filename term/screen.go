package term

import (
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

// screen is the slice of termbox the renderer draws with.
type screen interface {
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Clear(fg, bg termbox.Attribute) error
	Flush() error
	HideCursor()
}

type termboxScreen struct{}

func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxScreen) Clear(fg, bg termbox.Attribute) error { return termbox.Clear(fg, bg) }

func (termboxScreen) Flush() error { return termbox.Flush() }

func (termboxScreen) HideCursor() { termbox.HideCursor() }

// Open initialises the terminal and returns a renderer and input reading from
// it. Call Close when done.
func Open() (*Renderer, *Input, error) {
	if err := termbox.Init(); err != nil {
		return nil, nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	return NewRenderer(termboxScreen{}), NewInput(setupEventQueue()), nil
}

// Close restores the terminal.
func Close() {
	termbox.Close()
}

// Size returns the terminal size in cells.
func Size() (int, int) {
	return termbox.Size()
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event, 16)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}

func tbprint(s screen, x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		s.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
