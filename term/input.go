package term

import (
	"github.com/battlesnakeio/arcade/model"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
)

var arrowKeys = map[termbox.Key]model.Direction{
	termbox.KeyArrowUp:    model.Up,
	termbox.KeyArrowDown:  model.Down,
	termbox.KeyArrowLeft:  model.Left,
	termbox.KeyArrowRight: model.Right,
}

// Input turns termbox key events into game input.
type Input struct {
	events <-chan termbox.Event

	// Interrupt is called when the player presses Ctrl-C. Leaving it nil
	// makes Ctrl-C behave like quit at the restart prompt and be ignored
	// during play.
	Interrupt func()
}

// NewInput reads events from the given queue.
func NewInput(events <-chan termbox.Event) *Input {
	return &Input{events: events}
}

// PollDirection takes the next pending event, if there is one, and reports
// the direction it names. It never waits for a key.
func (in *Input) PollDirection() (model.Direction, bool) {
	select {
	case ev := <-in.events:
		if in.interrupted(ev) {
			return 0, false
		}
		if ev.Type != termbox.EventKey {
			return 0, false
		}
		d, ok := arrowKeys[ev.Key]
		return d, ok
	default:
		return 0, false
	}
}

// WaitForRestartChoice blocks until Enter (restart) or Space (quit) is
// pressed. Other keys are ignored.
func (in *Input) WaitForRestartChoice() bool {
	for ev := range in.events {
		if in.interrupted(ev) {
			return false
		}
		if ev.Type != termbox.EventKey {
			continue
		}
		switch {
		case ev.Key == termbox.KeyEnter:
			return true
		case ev.Key == termbox.KeySpace, ev.Ch == ' ':
			return false
		}
	}
	return false
}

func (in *Input) interrupted(ev termbox.Event) bool {
	if ev.Type == termbox.EventError {
		log.WithError(ev.Err).Warn("terminal input error")
		return false
	}
	if ev.Type != termbox.EventKey || ev.Key != termbox.KeyCtrlC {
		return false
	}
	if in.Interrupt != nil {
		in.Interrupt()
	}
	return true
}
