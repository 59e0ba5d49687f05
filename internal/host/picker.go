package host

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"github.com/marcus/dlg/pkg/dialog"
)

const defaultMaxVisible = 8

var (
	pickerUp     = key.NewBinding(key.WithKeys("up", "ctrl+p"))
	pickerDown   = key.NewBinding(key.WithKeys("down", "ctrl+n"))
	pickerSelect = key.NewBinding(key.WithKeys("enter"))
)

// Picker is a fuzzy-filtered list. Typing narrows the items, up/down moves
// the cursor and enter picks the highlighted item.
type Picker struct {
	items   []string
	input   textinput.Model
	matches []int // indexes into items, best match first
	cursor  int
	offset  int

	maxVisible int
	picked     string
	done       bool
}

// NewPicker creates a picker over items.
func NewPicker(items []string) *Picker {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "> "
	ti.Focus()

	p := &Picker{
		items:      items,
		input:      ti,
		maxVisible: defaultMaxVisible,
	}
	p.refilter()
	return p
}

// Matches returns the currently visible items in rank order.
func (p *Picker) Matches() []string {
	out := make([]string, len(p.matches))
	for i, idx := range p.matches {
		out[i] = p.items[idx]
	}
	return out
}

func (p *Picker) Init() tea.Cmd {
	return textinput.Blink
}

func (p *Picker) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, pickerUp):
			p.move(-1)
			return nil
		case key.Matches(keyMsg, pickerDown):
			p.move(1)
			return nil
		case key.Matches(keyMsg, pickerSelect):
			if len(p.matches) > 0 {
				p.picked = p.items[p.matches[p.cursor]]
				p.done = true
			}
			return nil
		}
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.refilter()
	}
	return cmd
}

func (p *Picker) Done() (string, bool) {
	return p.picked, p.done
}

func (p *Picker) move(delta int) {
	if len(p.matches) == 0 {
		return
	}
	p.cursor = min(max(p.cursor+delta, 0), len(p.matches)-1)
	if p.cursor < p.offset {
		p.offset = p.cursor
	} else if p.cursor >= p.offset+p.maxVisible {
		p.offset = p.cursor - p.maxVisible + 1
	}
}

func (p *Picker) refilter() {
	query := strings.TrimSpace(p.input.Value())
	p.matches = p.matches[:0]
	if query == "" {
		for i := range p.items {
			p.matches = append(p.matches, i)
		}
	} else {
		for _, match := range fuzzy.Find(query, p.items) {
			p.matches = append(p.matches, match.Index)
		}
	}
	p.cursor = 0
	p.offset = 0
}

func (p *Picker) View(width int) string {
	var sb strings.Builder
	p.input.Width = max(width-ansi.StringWidth(p.input.Prompt)-1, 1)
	sb.WriteString(p.input.View())

	if len(p.matches) == 0 {
		sb.WriteString("\n" + dialog.MutedText.Render("(no matches)"))
		return sb.String()
	}

	end := min(p.offset+p.maxVisible, len(p.matches))
	if p.offset > 0 {
		sb.WriteString("\n" + dialog.MutedText.Render("↑ more above"))
	}
	for i := p.offset; i < end; i++ {
		label := ansi.Truncate(p.items[p.matches[i]], width-2, "…")
		if i == p.cursor {
			sb.WriteString("\n" + dialog.ListCursor.Render("> ") + dialog.ListItemFocused.Render(label))
		} else {
			sb.WriteString("\n  " + dialog.ListItemNormal.Render(label))
		}
	}
	if end < len(p.matches) {
		sb.WriteString("\n" + dialog.MutedText.Render("↓ more below"))
	}
	return sb.String()
}
