package dialog

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/cellbuf"
)

// Content is the projected body of a dialog. The dialog only asks it to
// render at the available width.
type Content interface {
	View(width int) string
}

// ContentFunc adapts a plain function to Content.
type ContentFunc func(width int) string

// View implements Content.
func (f ContentFunc) View(width int) string {
	return f(width)
}

type textContent struct {
	text string
}

// Text returns static content wrapped to the dialog width.
func Text(s string) Content {
	return textContent{text: s}
}

func (t textContent) View(width int) string {
	if width <= 0 {
		return t.text
	}
	return cellbuf.Wrap(t.text, width, "")
}

type markdownContent struct {
	src   string
	style string
}

// Markdown returns content rendered from markdown source with the named
// glamour style ("dark", "light", "notty", ...). An empty style means "dark".
func Markdown(src, style string) Content {
	if style == "" {
		style = "dark"
	}
	return markdownContent{src: src, style: style}
}

func (m markdownContent) View(width int) string {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(m.style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return m.src
	}
	out, err := r.Render(m.src)
	if err != nil {
		return m.src
	}
	return strings.Trim(out, "\n")
}
