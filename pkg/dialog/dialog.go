package dialog

import "fmt"

// State is the lifecycle state of a Dialog.
type State int

const (
	StateConstructed State = iota
	StateMounted
	StateUnmounted
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateMounted:
		return "mounted"
	case StateUnmounted:
		return "unmounted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Dialog is one modal dialog instance.
type Dialog struct {
	onClose func()
	handler *keyHandler
	content Content

	title     string
	width     int
	variant   Variant
	showHints bool

	surface KeySurface
	state   State
}

// keyHandler is the dialog's registration on the key surface. It is built
// once per dialog and points back at its owner, so each mounted dialog
// closes itself and only itself.
type keyHandler struct {
	dlg *Dialog
}

// HandleKey closes the owning dialog on Escape and ignores everything else.
func (h *keyHandler) HandleKey(ev KeyEvent) {
	if ev.Code == KeyEscape {
		h.dlg.Close()
	}
}

// New creates a dialog that calls onClose whenever it should close. The
// content is rendered as the dialog body and never inspected. Nothing is
// registered until Mount.
func New(onClose func(), content Content, opts ...Option) *Dialog {
	d := &Dialog{
		onClose:   onClose,
		content:   content,
		width:     DefaultWidth,
		showHints: true,
	}
	d.handler = &keyHandler{dlg: d}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Mount registers the dialog's key handler on s. The surface must be
// non-nil and the dialog must not have been mounted before.
func (d *Dialog) Mount(s KeySurface) {
	if s == nil {
		panic("dialog: Mount with nil KeySurface")
	}
	if d.state != StateConstructed {
		panic("dialog: Mount on " + d.state.String() + " dialog")
	}
	s.Register(EventKeyDown, d.handler)
	d.surface = s
	d.state = StateMounted
}

// Unmount deregisters the key handler registered by Mount. It is safe to
// defer and to call more than once.
func (d *Dialog) Unmount() {
	if d.state == StateMounted {
		d.surface.Deregister(EventKeyDown, d.handler)
		d.surface = nil
	}
	d.state = StateUnmounted
}

// Close asks the host to close the dialog by invoking onClose. The dialog
// keeps no record of the request; it stays mounted until Unmount.
func (d *Dialog) Close() {
	if d.onClose != nil {
		d.onClose()
	}
}

// State returns the current lifecycle state.
func (d *Dialog) State() State {
	return d.state
}

// Mounted reports whether the key handler is currently registered.
func (d *Dialog) Mounted() bool {
	return d.state == StateMounted
}

// Title returns the dialog title.
func (d *Dialog) Title() string {
	return d.title
}

// Width returns the configured outer width.
func (d *Dialog) Width() int {
	return d.width
}
