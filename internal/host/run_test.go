package host

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/dlg/pkg/dialog"
)

type boomMsg struct{}

// panicContent panics on the message its own Init produces.
type panicContent struct{}

func (panicContent) View(int) string      { return "" }
func (panicContent) Init() tea.Cmd        { return func() tea.Msg { return boomMsg{} } }
func (panicContent) Done() (string, bool) { return "", false }

func (panicContent) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(boomMsg); ok {
		panic("content update failed")
	}
	return nil
}

func headlessOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithInput(nil),
		tea.WithOutput(&bytes.Buffer{}),
		tea.WithoutRenderer(),
	}
}

func assertTornDown(t *testing.T, m *Model) {
	t.Helper()
	if n := m.Document().Listeners(dialog.EventKeyDown); n != 0 {
		t.Errorf("Listeners() = %d after Run, want 0", n)
	}
	if s := m.Dialog().State(); s != dialog.StateUnmounted {
		t.Errorf("State() = %v after Run, want unmounted", s)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(NewMessage(dialog.Text("hi"), ""), Options{Name: "cancelled"})
	res, err := Run(ctx, m, headlessOptions()...)

	if err == nil {
		t.Error("expected error from cancelled context")
	}
	if res.Outcome != OutcomeCancelled {
		t.Errorf("Outcome = %q, want cancelled", res.Outcome)
	}
	assertTornDown(t, m)
}

func TestRunContentPanic(t *testing.T) {
	m := New(panicContent{}, Options{Name: "panic"})
	_, err := Run(context.Background(), m, headlessOptions()...)

	if err == nil {
		t.Error("expected error after panic in update")
	}
	assertTornDown(t, m)
}
