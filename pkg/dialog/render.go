package dialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const closeGlyph = "[x]"

// View renders the dialog frame around its projected content. maxWidth caps
// the configured width; pass 0 to use the configured width as is.
func (d *Dialog) View(maxWidth int) string {
	outer := d.outerWidth(maxWidth)
	inner := outer - 4

	var sections []string
	sections = append(sections, d.header(inner))

	if d.content != nil {
		if body := d.content.View(inner); body != "" {
			sections = append(sections, "", body)
		}
	}

	if d.showHints {
		sections = append(sections, "", MutedText.Render("esc close"))
	}

	return frameStyle(d.variant, outer).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// CloseRect returns the close affordance position relative to the top-left
// corner of the rendered frame.
func (d *Dialog) CloseRect(maxWidth int) (x, y, w, h int) {
	outer := d.outerWidth(maxWidth)
	w = lipgloss.Width(closeGlyph)
	// border and padding take two columns on the right
	return outer - 2 - w, 1, w, 1
}

func (d *Dialog) outerWidth(maxWidth int) int {
	outer := d.width
	if maxWidth > 0 && outer > maxWidth {
		outer = max(maxWidth, MinWidth)
	}
	return outer
}

func (d *Dialog) header(inner int) string {
	mark := CloseMark.Render(closeGlyph)
	title := TitleStyle.Foreground(variantColor(d.variant)).Render(d.title)

	room := inner - lipgloss.Width(mark) - 1
	if lipgloss.Width(title) > room {
		title = ansi.Truncate(title, room, "…")
	}
	gap := inner - lipgloss.Width(title) - lipgloss.Width(mark)
	return title + strings.Repeat(" ", max(gap, 1)) + mark
}

// Position returns the top-left cell at which Overlay places fg over a
// width x height screen.
func Position(fg string, width, height int) (x, y int) {
	x = max((width-lipgloss.Width(fg))/2, 0)
	y = max((height-lipgloss.Height(fg))/2, 0)
	return x, y
}

// Overlay draws fg centered on top of background. Background rows outside the
// dialog remain visible; background is padded to height rows.
func Overlay(background, fg string, width, height int) string {
	x, y := Position(fg, width, height)

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	fgLines := strings.Split(fg, "\n")
	fgWidth := lipgloss.Width(fg)

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bg := bgLines[row]

		left := ansi.Truncate(bg, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		if w := ansi.StringWidth(line); w < fgWidth {
			line += strings.Repeat(" ", fgWidth-w)
		}
		right := ""
		if ansi.StringWidth(bg) > x+fgWidth {
			right = ansi.TruncateLeft(bg, x+fgWidth, "")
		}
		bgLines[row] = left + "\x1b[0m" + line + "\x1b[0m" + right
	}

	return strings.Join(bgLines, "\n")
}
