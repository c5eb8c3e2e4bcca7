package panel

import (
	"log/slog"
	"sync"
	"time"

	"github.com/shelfhq/shelf/internal/dispatch"
	"github.com/shelfhq/shelf/internal/store"
	"github.com/shelfhq/shelf/pkg/types"
)

// Note editing defaults: the content cap and the quiescence delay before a
// pending edit is committed.
const (
	DefaultNoteCharLimit = 500
	DefaultNoteSaveDelay = 500 * time.Millisecond
)

// Notes owns sticky-note panels, keyed by entry id and independent of
// shelf visibility. Edits land in a local buffer and are committed to the
// store after a quiescence delay; Flush commits everything pending and is
// mandatory on shutdown.
type Notes struct {
	store  *store.Store
	system System
	exec   dispatch.Executor
	log    *slog.Logger

	charLimit int
	saveDelay time.Duration

	panels map[string]NotePanel

	// mu guards pending: debounce timers fire on timer goroutines and the
	// flush path must observe a consistent buffer map.
	mu      sync.Mutex
	pending map[string]*pendingEdit
}

type pendingEdit struct {
	shelfID string
	text    string
	timer   *time.Timer
}

// NotesOption configures a Notes controller.
type NotesOption func(*Notes)

// WithNoteCharLimit overrides the content cap.
func WithNoteCharLimit(n int) NotesOption {
	return func(c *Notes) { c.charLimit = n }
}

// WithNoteSaveDelay overrides the debounce delay.
func WithNoteSaveDelay(d time.Duration) NotesOption {
	return func(c *Notes) { c.saveDelay = d }
}

// WithNotesLogger sets the structured logger.
func WithNotesLogger(log *slog.Logger) NotesOption {
	return func(c *Notes) { c.log = log }
}

// NewNotes creates the sticky-note controller. exec is the dispatch loop
// debounced commits are marshaled onto.
func NewNotes(st *store.Store, system System, exec dispatch.Executor, opts ...NotesOption) *Notes {
	c := &Notes{
		store:     st,
		system:    system,
		exec:      exec,
		log:       slog.Default(),
		charLimit: DefaultNoteCharLimit,
		saveDelay: DefaultNoteSaveDelay,
		panels:    make(map[string]NotePanel),
		pending:   make(map[string]*pendingEdit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Toggle closes the note panel if open, opens it otherwise.
func (c *Notes) Toggle(entryID, shelfID string) {
	if _, ok := c.panels[entryID]; ok {
		c.Close(entryID)
		return
	}
	c.Show(entryID, shelfID)
}

// Show opens the note panel for the entry, or raises it if already open.
func (c *Notes) Show(entryID, shelfID string) {
	if existing, ok := c.panels[entryID]; ok {
		existing.Front()
		return
	}

	entry, ok := c.store.FindEntry(shelfID, entryID)
	if !ok || entry.Kind != types.KindStickyNote {
		return
	}

	p := c.system.CreateNote(Config{Width: noteWidth, Height: noteHeight, Note: true})
	c.panels[entryID] = p
	p.SetContent(NoteContent{
		EntryID: entryID,
		ShelfID: shelfID,
		Title:   entry.Name,
		Text:    entry.Content,
	})
	p.Front()
}

// Close flushes any pending edit for the entry and discards its panel.
// No-op if not open.
func (c *Notes) Close(entryID string) {
	c.flushOne(entryID)
	p, ok := c.panels[entryID]
	if !ok {
		return
	}
	p.Close()
	delete(c.panels, entryID)
}

// CloseAll flushes every pending edit and discards every note panel.
func (c *Notes) CloseAll() {
	c.Flush()
	for id, p := range c.panels {
		p.Close()
		delete(c.panels, id)
	}
}

// RefreshAll closes note panels whose entry no longer exists anywhere in
// the store. Shelf deletion and entry removal cascade to open sticky notes
// through this pass; the caller subscribes it to the store alongside the
// shelf panel reconciliation, so externally driven deletes (the document
// watcher) tear notes down the same way local ones do. A pending edit for
// a vanished entry is discarded, not committed.
func (c *Notes) RefreshAll() {
	for entryID := range c.panels {
		if !c.entryExists(entryID) {
			c.Close(entryID)
		}
	}
}

// entryExists reports whether any shelf still holds the entry.
func (c *Notes) entryExists(entryID string) bool {
	for _, sh := range c.store.Shelves() {
		if _, ok := sh.Entry(entryID); ok {
			return true
		}
	}
	return false
}

// IsOpen reports whether a note panel exists for the entry.
func (c *Notes) IsOpen(entryID string) bool {
	_, ok := c.panels[entryID]
	return ok
}

// Edit records a keystroke's worth of new content. Text beyond the cap is
// silently truncated on a rune boundary. The commit to the store happens
// after the save delay passes with no further edits.
func (c *Notes) Edit(entryID, shelfID, text string) {
	text = truncateRunes(text, c.charLimit)

	c.mu.Lock()
	defer c.mu.Unlock()

	if edit, ok := c.pending[entryID]; ok {
		edit.text = text
		edit.shelfID = shelfID
		edit.timer.Reset(c.saveDelay)
		return
	}

	edit := &pendingEdit{shelfID: shelfID, text: text}
	edit.timer = time.AfterFunc(c.saveDelay, func() {
		c.exec.Post(func() { c.flushOne(entryID) })
	})
	c.pending[entryID] = edit
}

// Flush synchronously commits every pending edit. Called from CloseAll and
// from application shutdown; an unflushed edit on exit would lose the
// user's text.
func (c *Notes) Flush() {
	c.mu.Lock()
	ids := make([]string, 0, len(c.pending))
	for id := range c.pending {
		ids = append(ids, id)
	}
	c.mu.Unlock()

	for _, id := range ids {
		c.flushOne(id)
	}
}

// flushOne commits one pending edit, re-resolving its target by id. A
// target deleted since the edit was buffered discards the edit.
func (c *Notes) flushOne(entryID string) {
	c.mu.Lock()
	edit, ok := c.pending[entryID]
	if !ok {
		c.mu.Unlock()
		return
	}
	edit.timer.Stop()
	delete(c.pending, entryID)
	shelfID, text := edit.shelfID, edit.text
	c.mu.Unlock()

	if _, ok := c.store.FindEntry(shelfID, entryID); !ok {
		c.log.Debug("note edit discarded, entry gone", "entry", entryID)
		return
	}
	c.store.UpdateStickyNoteContent(shelfID, entryID, text)
}

// truncateRunes caps s at limit runes without splitting a multibyte
// character.
func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
