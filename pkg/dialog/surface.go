package dialog

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// EventName identifies a channel on a KeySurface.
type EventName string

// EventKeyDown is the channel carrying key presses.
const EventKeyDown EventName = "keydown"

// Key codes for the keys the host bridge recognizes.
const (
	KeyBackspace = 8
	KeyTab       = 9
	KeyEnter     = 13
	KeyEscape    = 27
	KeySpace     = 32
)

// KeyEvent is a single key press as seen by listeners.
type KeyEvent struct {
	Code int    // numeric key code, 0 when the key has no code
	Key  string // human readable key name, e.g. "esc" or "a"
}

// KeyListener receives key events. Registrations are keyed by listener
// identity, so the same value must be used to deregister. Implementations
// must be comparable; a pointer to a struct is the usual choice.
type KeyListener interface {
	HandleKey(ev KeyEvent)
}

// KeySurface is the ambient, host-owned key event stream.
type KeySurface interface {
	Register(event EventName, l KeyListener)
	Deregister(event EventName, l KeyListener)
}

// KeyEventFromMsg converts a bubbletea key message into a KeyEvent.
func KeyEventFromMsg(msg tea.KeyMsg) KeyEvent {
	ev := KeyEvent{Key: msg.String()}

	switch msg.Type {
	case tea.KeyEsc:
		ev.Code = KeyEscape
	case tea.KeyEnter:
		ev.Code = KeyEnter
	case tea.KeyTab:
		ev.Code = KeyTab
	case tea.KeyBackspace:
		ev.Code = KeyBackspace
	case tea.KeySpace:
		ev.Code = KeySpace
	case tea.KeyRunes:
		// Alt-modified runes have no code of their own
		if len(msg.Runes) == 1 && !msg.Alt {
			ev.Code = int(unicode.ToUpper(msg.Runes[0]))
		}
	}

	return ev
}
