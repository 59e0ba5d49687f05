// Package dialog provides a single modal dialog instance that overlays a host
// view and closes on an explicit call or on an Escape key press anywhere in
// the application.
//
// The dialog does not own the key stream. The host hands it a KeySurface
// (usually a *Document shared by every component in the program) at mount
// time and must unmount it on every removal path.
//
// # Quick Start
//
//	doc := dialog.NewDocument()
//
//	d := dialog.New(func() { m.closing = true },
//	    dialog.Text("Discard unsaved changes?"),
//	    dialog.WithTitle("Confirm"))
//	d.Mount(doc)
//	defer d.Unmount()
//
//	// In Update():
//	if keyMsg, ok := msg.(tea.KeyMsg); ok {
//	    doc.Dispatch(dialog.EventKeyDown, dialog.KeyEventFromMsg(keyMsg))
//	}
//
//	// In View():
//	return dialog.Overlay(background, d.View(60), width, height)
//
// # Lifecycle
//
//	CONSTRUCTED -> MOUNTED    Mount registers the key handler
//	MOUNTED     -> MOUNTED    Escape or Close invokes onClose
//	MOUNTED     -> UNMOUNTED  Unmount deregisters the key handler
//
// UNMOUNTED is terminal. A dialog never removes itself from the view; the
// host reacts to onClose and calls Unmount.
package dialog
