package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/shelfhq/shelf/internal/dispatch"
	"github.com/shelfhq/shelf/internal/panel"
	"github.com/shelfhq/shelf/internal/store"
	"github.com/shelfhq/shelf/pkg/types"
)

type fixture struct {
	store *store.Store
	orch  *panel.Orchestrator
	notes *panel.Notes
	sys   *System
	model Model
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "shelves.json"), store.WithExecutor(dispatch.Direct{}))
	sys := NewSystem()
	orch := panel.NewOrchestrator(st, sys, nil)
	notes := panel.NewNotes(st, sys, dispatch.Direct{},
		panel.WithNoteSaveDelay(time.Hour))
	st.Subscribe(orch.RefreshAll)
	st.Subscribe(notes.RefreshAll)
	return &fixture{
		store: st,
		orch:  orch,
		notes: notes,
		sys:   sys,
		model: NewModel(st, orch, notes, sys, panel.DefaultNoteCharLimit),
	}
}

// send runs key messages through Update in order.
func (f *fixture) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		next, _ := f.model.Update(msg)
		f.model = next.(Model)
	}
}

func keyRunes(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNamingCreatesShelf(t *testing.T) {
	f := newFixture(t)

	f.send(keyRunes("n"), keyRunes("Dock"), tea.KeyMsg{Type: tea.KeyEnter})

	shelves := f.store.Shelves()
	require.Len(t, shelves, 1)
	require.Equal(t, "Dock", shelves[0].Name)
	require.Equal(t, modeNormal, f.model.mode)
}

func TestNamingEscapeCancels(t *testing.T) {
	f := newFixture(t)

	f.send(keyRunes("n"), keyRunes("abandoned"), tea.KeyMsg{Type: tea.KeyEsc})

	require.Empty(t, f.store.Shelves())
	require.Equal(t, modeNormal, f.model.mode)
}

func TestVisibilityToggleClosesPanel(t *testing.T) {
	f := newFixture(t)
	f.store.CreateShelf("Work")
	require.Len(t, f.orch.LivePanels(), 1)

	f.send(keyRunes("v"))

	require.False(t, f.store.Shelves()[0].Visible)
	require.Empty(t, f.orch.LivePanels())

	f.send(keyRunes("v"))
	require.True(t, f.store.Shelves()[0].Visible)
	require.Len(t, f.orch.LivePanels(), 1)
}

func TestOrientationToggle(t *testing.T) {
	f := newFixture(t)
	f.store.CreateShelf("Work")

	f.send(keyRunes("o"))
	require.Equal(t, types.OrientationVertical, f.store.Shelves()[0].Orientation)

	f.send(keyRunes("o"))
	require.Equal(t, types.OrientationHorizontal, f.store.Shelves()[0].Orientation)
}

func TestNudgeWritesPositionThrough(t *testing.T) {
	f := newFixture(t)
	sh := f.store.CreateShelf("Work")

	f.send(keyRunes("L"), keyRunes("J"), keyRunes("J"))

	got, ok := f.store.Shelf(sh.ID)
	require.True(t, ok)
	require.Equal(t, types.DefaultPositionX+panelStep, got.PositionX)
	require.Equal(t, types.DefaultPositionY+2*panelStep, got.PositionY)
}

func TestEnterOpensAndEscClosesNote(t *testing.T) {
	f := newFixture(t)
	sh := f.store.CreateShelf("Work")
	f.store.AddStickyNote(sh.ID, "Todo")
	noteID := f.store.Shelves()[0].Entries[0].ID

	f.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeEditing, f.model.mode)
	require.True(t, f.notes.IsOpen(noteID))

	f.send(keyRunes("buy milk"), tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, modeNormal, f.model.mode)
	require.False(t, f.notes.IsOpen(noteID))

	// Closing flushes the pending edit.
	e, ok := f.store.FindEntry(sh.ID, noteID)
	require.True(t, ok)
	require.Equal(t, "buy milk", e.Content)
}

func TestEnterIgnoresNonNoteEntries(t *testing.T) {
	f := newFixture(t)
	sh := f.store.CreateShelf("Work")
	f.store.AddSnippet(sh.ID, "Snippet", "text")

	f.send(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, modeNormal, f.model.mode)
}

func TestMoveReordersEntries(t *testing.T) {
	f := newFixture(t)
	sh := f.store.CreateShelf("Work")
	f.store.AddSnippet(sh.ID, "a", "a")
	f.store.AddSnippet(sh.ID, "b", "b")
	f.store.AddSnippet(sh.ID, "c", "c")

	// Entry selection starts at index 0; move "a" one slot right.
	f.send(keyRunes("]"))

	var names []string
	for _, e := range f.store.Shelves()[0].Entries {
		names = append(names, e.Name)
	}
	require.Equal(t, []string{"b", "a", "c"}, names)
	require.Equal(t, 1, f.model.entrySel)
}

func TestRemoveSelectedEntry(t *testing.T) {
	f := newFixture(t)
	sh := f.store.CreateShelf("Work")
	f.store.AddSnippet(sh.ID, "a", "a")
	f.store.AddSnippet(sh.ID, "b", "b")

	f.send(keyRunes("x"))

	entries := f.store.Shelves()[0].Entries
	require.Len(t, entries, 1)
	require.Equal(t, "b", entries[0].Name)
}

func TestDeleteShelfClampsSelection(t *testing.T) {
	f := newFixture(t)
	f.store.CreateShelf("One")
	f.store.CreateShelf("Two")
	f.send(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 1, f.model.shelfSel)

	f.send(keyRunes("d"))

	require.Len(t, f.store.Shelves(), 1)
	require.Equal(t, 0, f.model.shelfSel)
}

func TestSelectionWrapsAround(t *testing.T) {
	f := newFixture(t)
	f.store.CreateShelf("One")
	f.store.CreateShelf("Two")

	f.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, 1, f.model.shelfSel)

	f.send(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 0, f.model.shelfSel)
}

func TestExecMsgRunsPostedWork(t *testing.T) {
	f := newFixture(t)
	ran := false

	f.send(execMsg{fn: func() { ran = true }})

	require.True(t, ran)
}

func TestExecutorBuffersUntilAttach(t *testing.T) {
	e := NewExecutor()
	ran := 0
	e.Post(func() { ran++ })
	e.Post(func() { ran++ })

	require.Equal(t, 0, ran)
	require.Len(t, e.backlog, 2)
}
