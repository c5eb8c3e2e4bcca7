package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shelfhq/shelf/internal/classify"
	"github.com/shelfhq/shelf/internal/panel"
	"github.com/shelfhq/shelf/internal/store"
	"github.com/shelfhq/shelf/pkg/types"
)

// panelStep is how far one keypress nudges a shelf panel, in the same
// coordinate space the document persists.
const panelStep = 10.0

type mode int

const (
	modeNormal mode = iota
	modeNaming
	modeEditing
)

// Model is the interactive session state. Shelf and entry data always come
// from the store; the model only holds selection and input state.
type Model struct {
	store *store.Store
	orch  *panel.Orchestrator
	notes *panel.Notes
	sys   *System

	mode      mode
	shelfSel  int
	entrySel  int
	nameInput textinput.Model
	editor    textarea.Model
	editEntry string
	editShelf string
	noteLimit int

	width  int
	height int
	status string
}

// NewModel builds the session model. noteLimit must match the cap the notes
// controller enforces so the editor refuses input at the same boundary.
func NewModel(st *store.Store, orch *panel.Orchestrator, notes *panel.Notes, sys *System, noteLimit int) Model {
	name := textinput.New()
	name.Placeholder = "shelf name"
	name.CharLimit = 64

	editor := textarea.New()
	editor.CharLimit = noteLimit
	editor.SetWidth(30)
	editor.SetHeight(6)

	return Model{
		store:     st,
		orch:      orch,
		notes:     notes,
		sys:       sys,
		nameInput: name,
		editor:    editor,
		noteLimit: noteLimit,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case execMsg:
		msg.fn()
		return m.clampSelection(), nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeNaming:
			return m.updateNaming(msg)
		case modeEditing:
			return m.updateEditing(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.notes.Flush()
		m.orch.SaveAllPositions()
		return m, tea.Quit

	case "tab", "down", "j":
		m.shelfSel++
		return m.clampSelection(), nil
	case "shift+tab", "up", "k":
		m.shelfSel--
		return m.clampSelection(), nil
	case "right", "l":
		m.entrySel++
		return m.clampSelection(), nil
	case "left", "h":
		m.entrySel--
		return m.clampSelection(), nil

	case "n":
		m.mode = modeNaming
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return m, textinput.Blink

	case "d":
		if sh, ok := m.selectedShelf(); ok {
			m.store.DeleteShelf(sh.ID)
			m.status = "deleted " + sh.Name
		}
		return m.clampSelection(), nil

	case "v":
		if sh, ok := m.selectedShelf(); ok {
			sh.Visible = !sh.Visible
			m.store.UpdateShelf(sh.ID, sh)
		}
		return m, nil

	case "o":
		if sh, ok := m.selectedShelf(); ok {
			if sh.Orientation == types.OrientationHorizontal {
				sh.Orientation = types.OrientationVertical
			} else {
				sh.Orientation = types.OrientationHorizontal
			}
			m.store.UpdateShelf(sh.ID, sh)
		}
		return m, nil

	case "enter", " ":
		if sh, e, ok := m.selectedEntry(); ok && e.Kind == types.KindStickyNote {
			return m.openEditor(sh.ID, e), nil
		}
		return m, nil

	case "x":
		if sh, e, ok := m.selectedEntry(); ok {
			m.store.RemoveEntry(sh.ID, e.ID)
		}
		return m.clampSelection(), nil

	case "[":
		return m.moveSelected(-1), nil
	case "]":
		return m.moveSelected(+1), nil

	case "p":
		return m.paste(), nil

	case "H":
		return m.nudge(-panelStep, 0), nil
	case "L":
		return m.nudge(panelStep, 0), nil
	case "K":
		return m.nudge(0, -panelStep), nil
	case "J":
		return m.nudge(0, panelStep), nil
	}
	return m, nil
}

func (m Model) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.nameInput.Blur()
		return m, nil
	case "enter":
		name := m.nameInput.Value()
		m.mode = modeNormal
		m.nameInput.Blur()
		if name != "" {
			sh := m.store.CreateShelf(name)
			m.status = "created " + sh.Name
		}
		return m.clampSelection(), nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.notes.Close(m.editEntry)
		m.mode = modeNormal
		m.editor.Blur()
		m.editEntry = ""
		m.editShelf = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.notes.Edit(m.editEntry, m.editShelf, m.editor.Value())
	return m, cmd
}

// openEditor shows the sticky-note panel and focuses the textarea on the
// entry's current content.
func (m Model) openEditor(shelfID string, e types.Entry) Model {
	m.notes.Show(e.ID, shelfID)
	m.mode = modeEditing
	m.editEntry = e.ID
	m.editShelf = shelfID
	m.editor.SetValue(e.Content)
	m.editor.Focus()
	return m
}

// paste classifies the clipboard and routes the result onto the selected
// shelf. An empty or unreadable clipboard is a no-op.
func (m Model) paste() Model {
	sh, ok := m.selectedShelf()
	if !ok {
		return m
	}
	text, err := clipboard.ReadAll()
	if err != nil || text == "" {
		m.status = "clipboard empty"
		return m
	}
	m.orch.HandlePaste(sh.ID, classify.Payload{Text: text})
	return m
}

// moveSelected reorders the selected entry one slot in the given direction.
func (m Model) moveSelected(dir int) Model {
	sh, e, ok := m.selectedEntry()
	if !ok {
		return m
	}
	target := m.entrySel + dir
	if target < 0 || target >= len(sh.Entries) {
		return m
	}
	m.store.MoveEntry(sh.ID, e.ID, sh.Entries[target].ID)
	m.entrySel = target
	return m
}

// nudge drags the selected shelf's panel, which writes the new origin
// through to the store via the move observer.
func (m Model) nudge(dx, dy float64) Model {
	sh, ok := m.selectedShelf()
	if !ok {
		return m
	}
	for _, p := range m.sys.openShelves() {
		if p.content.Shelf.ID == sh.ID {
			p.move(dx, dy)
			return m
		}
	}
	return m
}

func (m Model) selectedShelf() (types.Shelf, bool) {
	shelves := m.store.Shelves()
	if m.shelfSel < 0 || m.shelfSel >= len(shelves) {
		return types.Shelf{}, false
	}
	return shelves[m.shelfSel], true
}

func (m Model) selectedEntry() (types.Shelf, types.Entry, bool) {
	sh, ok := m.selectedShelf()
	if !ok {
		return types.Shelf{}, types.Entry{}, false
	}
	if m.entrySel < 0 || m.entrySel >= len(sh.Entries) {
		return types.Shelf{}, types.Entry{}, false
	}
	return sh, sh.Entries[m.entrySel], true
}

// clampSelection keeps the cursor inside the current document after any
// mutation, including ones arriving from the file watcher.
func (m Model) clampSelection() Model {
	shelves := m.store.Shelves()
	if len(shelves) == 0 {
		m.shelfSel, m.entrySel = 0, 0
		return m
	}
	if m.shelfSel < 0 {
		m.shelfSel = len(shelves) - 1
	}
	if m.shelfSel >= len(shelves) {
		m.shelfSel = 0
	}
	n := len(shelves[m.shelfSel].Entries)
	if n == 0 {
		m.entrySel = 0
		return m
	}
	if m.entrySel < 0 {
		m.entrySel = n - 1
	}
	if m.entrySel >= n {
		m.entrySel = 0
	}
	return m
}
