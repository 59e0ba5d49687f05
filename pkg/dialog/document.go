package dialog

import (
	"log/slog"
	"slices"
	"sync"
)

// Document is the process-wide key event stream. Any number of components
// may register on it; each registration is independent of the others.
type Document struct {
	mu        sync.Mutex
	listeners map[EventName][]KeyListener
	logger    *slog.Logger
}

// NewDocument creates an empty document that logs through slog.Default().
func NewDocument() *Document {
	return &Document{
		listeners: make(map[EventName][]KeyListener),
		logger:    slog.Default(),
	}
}

// SetLogger replaces the logger used for registration debug output.
func (d *Document) SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	d.mu.Lock()
	d.logger = l
	d.mu.Unlock()
}

// Register appends l to the listeners of event. Registering a listener that
// is already present is a no-op.
func (d *Document) Register(event EventName, l KeyListener) {
	if l == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if slices.Contains(d.listeners[event], l) {
		return
	}
	d.listeners[event] = append(d.listeners[event], l)
	d.logger.Debug("listener registered", "event", event, "count", len(d.listeners[event]))
}

// Deregister removes l from the listeners of event. Other listeners keep
// their relative order.
func (d *Document) Deregister(event EventName, l KeyListener) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ls := d.listeners[event]
	i := slices.Index(ls, l)
	if i < 0 {
		return
	}
	// Clone so a snapshot taken by an in-flight Dispatch is not mutated
	ls = slices.Delete(slices.Clone(ls), i, i+1)
	if len(ls) == 0 {
		delete(d.listeners, event)
	} else {
		d.listeners[event] = ls
	}
	d.logger.Debug("listener deregistered", "event", event, "count", len(ls))
}

// Dispatch delivers ev to every listener registered for event at the time of
// the call, in registration order. Listeners run synchronously on the
// calling goroutine and outside the document lock, so they may register or
// deregister freely.
func (d *Document) Dispatch(event EventName, ev KeyEvent) {
	d.mu.Lock()
	snapshot := d.listeners[event]
	d.mu.Unlock()

	for _, l := range snapshot {
		l.HandleKey(ev)
	}
}

// Listeners returns the number of listeners registered for event.
func (d *Document) Listeners(event EventName) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[event])
}
