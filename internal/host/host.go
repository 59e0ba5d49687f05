// Package host runs a single dialog inside a bubbletea program. It owns the
// key document, bridges bubbletea messages onto it and performs teardown
// when the dialog asks to close.
package host

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/dlg/pkg/dialog"
	"github.com/marcus/dlg/pkg/dialog/mouse"
)

const closeRegionID = "close"

// Outcome describes how the dialog session ended.
type Outcome string

const (
	OutcomeDismissed Outcome = "dismissed" // Escape or close mark
	OutcomeSubmitted Outcome = "submitted" // content completed with a value
	OutcomeCancelled Outcome = "cancelled" // ctrl+c, program stopped
)

// Result is what a finished session reports back to the caller.
type Result struct {
	Outcome Outcome
	Value   string
}

// Interactive is projected content that also takes part in the bubbletea
// update loop. Done reports a value once the content has been completed.
type Interactive interface {
	dialog.Content
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	Done() (string, bool)
}

// Options configures a Model.
type Options struct {
	Name       string // dialog name, used for logging and the journal
	Title      string
	Width      int
	Variant    dialog.Variant
	ShowHints  bool
	Background string
	Logger     *slog.Logger
}

type keyMap struct {
	Close key.Binding
	Quit  key.Binding

	// frame already shows the close hint
	hideClose bool
}

func (k keyMap) ShortHelp() []key.Binding {
	if k.hideClose {
		return []key.Binding{k.Quit}
	}
	return []key.Binding{k.Close, k.Quit}
}
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var defaultKeys = keyMap{
	Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// Model is the bubbletea model hosting one dialog. It is used by pointer so
// the dialog's onClose callback can reach it.
type Model struct {
	opts    Options
	doc     *dialog.Document
	dlg     *dialog.Dialog
	content Interactive

	mouse *mouse.Handler
	keys  keyMap
	help  help.Model

	width, height int

	closeRequested bool
	result         Result
	logger         *slog.Logger
}

// New creates a host for content. The dialog is constructed here and
// mounted by Init.
func New(content Interactive, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Name == "" {
		opts.Name = "dialog"
	}

	m := &Model{
		opts:    opts,
		doc:     dialog.NewDocument(),
		content: content,
		mouse:   mouse.NewHandler(),
		keys:    defaultKeys,
		help:    help.New(),
		result:  Result{Outcome: OutcomeDismissed},
		logger:  logger.With("dialog", opts.Name),
	}
	m.doc.SetLogger(m.logger)
	m.keys.hideClose = opts.ShowHints

	m.dlg = dialog.New(m.requestClose, content,
		dialog.WithTitle(opts.Title),
		dialog.WithWidth(opts.Width),
		dialog.WithVariant(opts.Variant),
		dialog.WithHints(opts.ShowHints),
	)
	return m
}

func (m *Model) requestClose() {
	m.closeRequested = true
	m.logger.Debug("close requested", "outcome", m.result.Outcome)
}

// Dialog returns the hosted dialog.
func (m *Model) Dialog() *dialog.Dialog {
	return m.dlg
}

// Document returns the key document the dialog is mounted on.
func (m *Model) Document() *dialog.Document {
	return m.doc
}

// Result returns the session result. It is meaningful once the program has
// exited.
func (m *Model) Result() Result {
	return m.result
}

// Init mounts the dialog and starts the content.
func (m *Model) Init() tea.Cmd {
	if m.dlg.State() == dialog.StateConstructed {
		m.dlg.Mount(m.doc)
		m.logger.Info("dialog mounted")
	}
	if m.content == nil {
		return nil
	}
	return m.content.Init()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.result = Result{Outcome: OutcomeCancelled}
			return m, m.finish()
		}
		m.result = Result{Outcome: OutcomeDismissed}
		m.doc.Dispatch(dialog.EventKeyDown, dialog.KeyEventFromMsg(msg))
		if m.closeRequested {
			return m, m.finish()
		}

	case tea.MouseMsg:
		action := m.mouse.HandleMouse(msg)
		clicked := action.Type == mouse.ActionClick || action.Type == mouse.ActionDoubleClick
		if clicked && action.Region != nil && action.Region.ID == closeRegionID {
			m.result = Result{Outcome: OutcomeDismissed}
			m.dlg.Close()
			if m.closeRequested {
				return m, m.finish()
			}
		}
	}

	if m.content == nil {
		return m, nil
	}
	cmd := m.content.Update(msg)
	if v, ok := m.content.Done(); ok {
		m.result = Result{Outcome: OutcomeSubmitted, Value: v}
		m.dlg.Close()
	}
	if m.closeRequested {
		if cmd == nil {
			return m, m.finish()
		}
		return m, tea.Batch(cmd, m.finish())
	}
	return m, cmd
}

// finish tears the dialog down and stops the program.
func (m *Model) finish() tea.Cmd {
	if m.dlg.Mounted() {
		m.dlg.Unmount()
		m.logger.Info("dialog unmounted", "outcome", m.result.Outcome)
	}
	return tea.Quit
}

// View implements tea.Model. It also refreshes the close mark hit region.
func (m *Model) View() string {
	if m.dlg.State() == dialog.StateUnmounted {
		return ""
	}

	bg := m.background()
	fg := m.dlg.View(m.width)
	if m.width == 0 || m.height == 0 {
		return bg + "\n" + fg
	}

	x, y := dialog.Position(fg, m.width, m.height)
	cx, cy, cw, ch := m.dlg.CloseRect(m.width)
	m.mouse.Clear()
	m.mouse.HitMap.AddRect(closeRegionID, x+cx, y+cy, cw, ch, nil)

	return dialog.Overlay(bg, fg, m.width, m.height)
}

func (m *Model) background() string {
	var lines []string
	if m.opts.Background != "" {
		lines = append(lines, dialog.MutedText.Render(m.opts.Background))
	}
	footer := m.help.View(m.keys)

	if m.height > 0 {
		for len(lines) < m.height-1 {
			lines = append(lines, "")
		}
		lines = lines[:m.height-1]
	}
	lines = append(lines, footer)
	return strings.Join(lines, "\n")
}

// Run starts a bubbletea program for m and blocks until it exits. The dialog
// is unmounted on every exit path, including program errors and panics in
// the update loop.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) (Result, error) {
	defer m.dlg.Unmount()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return Result{Outcome: OutcomeCancelled}, fmt.Errorf("run dialog: %w", err)
	}
	return m.result, nil
}
