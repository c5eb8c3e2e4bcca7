package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shelfhq/shelf/pkg/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	shelfStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedShelfStyle = shelfStyle.
				BorderForeground(lipgloss.Color("205"))

	entryStyle = lipgloss.NewStyle().
			Padding(0, 1)

	selectedEntryStyle = entryStyle.
				Reverse(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	noteStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("228")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// entryGlyphs map entry kinds to the marker drawn before the name.
var entryGlyphs = map[string]string{
	types.KindApplication: "▶",
	types.KindFolder:      "▣",
	types.KindLink:        "↗",
	types.KindSnippet:     "❝",
	types.KindStickyNote:  "✎",
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("shelf"))
	b.WriteString("\n\n")

	shelves := m.store.Shelves()
	if len(shelves) == 0 {
		b.WriteString(dimStyle.Render("no shelves yet. press n to create one."))
		b.WriteString("\n")
	}
	for i, sh := range shelves {
		b.WriteString(m.renderShelf(sh, i == m.shelfSel))
		b.WriteString("\n")
	}

	for _, p := range m.sys.openNotes() {
		b.WriteString(m.renderNote(p))
		b.WriteString("\n")
	}

	switch m.mode {
	case modeNaming:
		b.WriteString("\nname: " + m.nameInput.View() + "\n")
	case modeEditing:
		b.WriteString("\n" + m.editor.View() + "\n")
		b.WriteString(dimStyle.Render("esc closes the note") + "\n")
	default:
		b.WriteString("\n" + statusStyle.Render(m.statusLine()) + "\n")
	}

	return b.String()
}

func (m Model) renderShelf(sh types.Shelf, selected bool) string {
	var cells []string
	for i, e := range sh.Entries {
		style := entryStyle
		if selected && i == m.entrySel {
			style = selectedEntryStyle
		}
		cells = append(cells, style.Render(entryLabel(e)))
	}
	if len(cells) == 0 {
		cells = append(cells, dimStyle.Render("(empty)"))
	}

	var body string
	if sh.Orientation == types.OrientationVertical {
		body = lipgloss.JoinVertical(lipgloss.Left, cells...)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Center, cells...)
	}

	header := sh.Name
	if !sh.Visible {
		header += dimStyle.Render(" (hidden)")
	}
	header += dimStyle.Render(fmt.Sprintf("  %.0f,%.0f", sh.PositionX, sh.PositionY))

	box := shelfStyle
	if selected {
		box = selectedShelfStyle
	}
	return box.Render(header + "\n" + body)
}

func (m Model) renderNote(p *notePanel) string {
	return noteStyle.Render(p.content.Title + "\n" + p.content.Text)
}

func (m Model) statusLine() string {
	if m.status != "" {
		return m.status
	}
	return "n new · d delete · v visibility · o orient · enter note · p paste · [/] move · HJKL drag · q quit"
}

// entryLabel renders one entry as glyph plus name. Spacers render as blank
// space and separators as a rule, matching their layout-only role.
func entryLabel(e types.Entry) string {
	switch e.Kind {
	case types.KindSpacer:
		return "  "
	case types.KindSeparator:
		return "│"
	}
	glyph, ok := entryGlyphs[e.Kind]
	if !ok {
		glyph = "?"
	}
	name := e.Name
	if name == "" {
		name = "(unnamed)"
	}
	return glyph + " " + name
}
