// Package panel keeps live floating panels in lockstep with store state:
// one panel per visible shelf, plus sticky-note panels keyed by entry id.
// The window system itself sits behind the System interface so the
// terminal backend and the test fake are interchangeable.
package panel

import "github.com/shelfhq/shelf/pkg/types"

// Content is the snapshot a panel renders. Panels never alias store
// memory; every update hands them a fresh copy.
type Content struct {
	Shelf types.Shelf
}

// NoteContent is the snapshot a sticky-note panel renders.
type NoteContent struct {
	EntryID string
	ShelfID string
	Title   string
	Text    string
}

// Config describes a panel to create: floating, non-activating,
// borderless, visible across workspaces. The backend decides how much of
// that translates to its medium.
type Config struct {
	X, Y, Width, Height float64
	Note                bool
}

// Panel is one live floating window.
type Panel interface {
	// SetContent replaces what the panel displays.
	SetContent(c Content)
	// SetFrame moves and resizes the panel, animated where the backend
	// supports it.
	SetFrame(x, y, w, h float64)
	// Origin reports the current on-screen origin, which may differ from
	// the last SetFrame if the user dragged the panel.
	Origin() (x, y float64)
	// Front raises the panel.
	Front()
	// Close removes the panel from screen. The panel is dead afterwards.
	Close()
	// OnMove registers the interactive-move observer. Passing nil detaches
	// it.
	OnMove(fn func(x, y float64))
}

// NotePanel is one live sticky-note window.
type NotePanel interface {
	SetContent(c NoteContent)
	Front()
	Close()
}

// System creates panels. Implementations: the terminal backend in
// internal/tui, the fake in paneltest.
type System interface {
	Create(cfg Config) Panel
	CreateNote(cfg Config) NotePanel
}
