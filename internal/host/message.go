package host

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/dlg/pkg/dialog"
)

var acceptKey = key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "accept"))

// Message shows a body and a single button. Enter or space accepts.
type Message struct {
	body   dialog.Content
	button string
	done   bool
}

// NewMessage creates message content. An empty button label means "OK".
func NewMessage(body dialog.Content, button string) *Message {
	if button == "" {
		button = "OK"
	}
	return &Message{body: body, button: button}
}

func (c *Message) Init() tea.Cmd { return nil }

func (c *Message) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, acceptKey) {
		c.done = true
	}
	return nil
}

func (c *Message) Done() (string, bool) {
	return c.button, c.done
}

func (c *Message) View(width int) string {
	btn := dialog.ButtonFocused.Render(c.button)
	row := lipgloss.PlaceHorizontal(width, lipgloss.Right, btn)
	if c.body == nil {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, c.body.View(width), "", row)
}
