package dialog

import "testing"

func escape() KeyEvent {
	return KeyEvent{Code: KeyEscape, Key: "esc"}
}

func TestEscapeAfterMount(t *testing.T) {
	doc := NewDocument()
	calls, onClose := counter()
	d := New(onClose, nil)
	d.Mount(doc)

	doc.Dispatch(EventKeyDown, escape())

	if *calls != 1 {
		t.Errorf("onClose called %d times, want 1", *calls)
	}
}

func TestNonEscapeIgnored(t *testing.T) {
	doc := NewDocument()
	calls, onClose := counter()
	d := New(onClose, nil)
	d.Mount(doc)

	for _, code := range []int{KeyEnter, KeyTab, KeySpace, 'A', 0} {
		doc.Dispatch(EventKeyDown, KeyEvent{Code: code})
	}

	if *calls != 0 {
		t.Errorf("onClose called %d times, want 0", *calls)
	}
}

func TestEscapeAfterUnmount(t *testing.T) {
	doc := NewDocument()
	calls, onClose := counter()
	d := New(onClose, nil)
	d.Mount(doc)
	d.Unmount()

	doc.Dispatch(EventKeyDown, escape())

	if *calls != 0 {
		t.Errorf("onClose called %d times, want 0", *calls)
	}
	if n := doc.Listeners(EventKeyDown); n != 0 {
		t.Errorf("Listeners() = %d after unmount, want 0", n)
	}
}

func TestTwoDialogsEachClose(t *testing.T) {
	doc := NewDocument()
	calls1, f1 := counter()
	calls2, f2 := counter()
	a := New(f1, nil)
	b := New(f2, nil)
	a.Mount(doc)
	b.Mount(doc)

	doc.Dispatch(EventKeyDown, escape())

	if *calls1 != 1 || *calls2 != 1 {
		t.Errorf("calls = (%d, %d), want (1, 1)", *calls1, *calls2)
	}
}

func TestUnmountOneKeepsOther(t *testing.T) {
	doc := NewDocument()
	callsA, fa := counter()
	callsB, fb := counter()
	a := New(fa, nil)
	b := New(fb, nil)
	a.Mount(doc)
	b.Mount(doc)

	a.Unmount()
	doc.Dispatch(EventKeyDown, escape())

	if *callsA != 0 {
		t.Errorf("unmounted dialog A closed %d times", *callsA)
	}
	if *callsB != 1 {
		t.Errorf("dialog B closed %d times, want 1", *callsB)
	}
}

func TestUnmountDuringDispatch(t *testing.T) {
	doc := NewDocument()
	var a, b *Dialog
	callsB := 0

	// A's host tears down both dialogs as soon as A closes
	a = New(func() {
		a.Unmount()
		b.Unmount()
	}, nil)
	b = New(func() { callsB++ }, nil)
	a.Mount(doc)
	b.Mount(doc)

	doc.Dispatch(EventKeyDown, escape())

	if callsB != 1 {
		t.Errorf("B should still see the in-flight event, got %d calls", callsB)
	}
	if n := doc.Listeners(EventKeyDown); n != 0 {
		t.Errorf("Listeners() = %d, want 0", n)
	}

	doc.Dispatch(EventKeyDown, escape())
	if callsB != 1 {
		t.Errorf("B closed after teardown: %d calls", callsB)
	}
}

func TestRepeatedEscapeNotDebounced(t *testing.T) {
	doc := NewDocument()
	calls, onClose := counter()
	New(onClose, nil).Mount(doc)

	for range 3 {
		doc.Dispatch(EventKeyDown, escape())
	}

	if *calls != 3 {
		t.Errorf("onClose called %d times, want 3", *calls)
	}
}

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) HandleKey(KeyEvent) {
	*r.log = append(*r.log, r.name)
}

func TestDispatchOrderAndIdentity(t *testing.T) {
	doc := NewDocument()
	var log []string
	first := &recorder{name: "first", log: &log}
	second := &recorder{name: "second", log: &log}
	third := &recorder{name: "third", log: &log}

	doc.Register(EventKeyDown, first)
	doc.Register(EventKeyDown, second)
	doc.Register(EventKeyDown, third)
	doc.Register(EventKeyDown, second) // duplicate ignored

	doc.Deregister(EventKeyDown, second)
	doc.Deregister(EventKeyDown, &recorder{name: "second", log: &log}) // different identity
	doc.Dispatch(EventKeyDown, KeyEvent{})

	if len(log) != 2 || log[0] != "first" || log[1] != "third" {
		t.Errorf("dispatch log = %v, want [first third]", log)
	}
}

func TestDispatchOtherEvent(t *testing.T) {
	doc := NewDocument()
	var log []string
	doc.Register(EventKeyDown, &recorder{name: "down", log: &log})

	doc.Dispatch(EventName("keyup"), escape())

	if len(log) != 0 {
		t.Errorf("keydown listener received keyup: %v", log)
	}
}

func TestRegisterNil(t *testing.T) {
	doc := NewDocument()
	doc.Register(EventKeyDown, nil)
	if n := doc.Listeners(EventKeyDown); n != 0 {
		t.Errorf("Listeners() = %d, want 0", n)
	}
}
