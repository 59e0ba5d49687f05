package host

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Prompt asks for a single line of text using a huh form.
type Prompt struct {
	form  *huh.Form
	value string
}

// NewPrompt creates a prompt with the given field title and placeholder.
func NewPrompt(title, placeholder string) *Prompt {
	p := &Prompt{}
	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				Value(&p.value),
		),
	).WithShowHelp(false)
	return p
}

func (p *Prompt) Init() tea.Cmd {
	return p.form.Init()
}

func (p *Prompt) Update(msg tea.Msg) tea.Cmd {
	model, cmd := p.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		p.form = f
	}
	return cmd
}

func (p *Prompt) Done() (string, bool) {
	return p.value, p.form.State == huh.StateCompleted
}

func (p *Prompt) View(width int) string {
	if width > 0 {
		p.form = p.form.WithWidth(width)
	}
	return p.form.View()
}
