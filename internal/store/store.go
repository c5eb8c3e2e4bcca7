// Package store owns the authoritative shelf collection: a single in-memory
// list persisted to one JSON document, mutated only through the operations
// below. Every successful mutation rewrites the whole document and then
// notifies subscribers synchronously, in registration order, before the
// operation returns.
//
// The store is confined to the dispatch loop: all mutation happens on one
// logical thread, so there is no locking here. Asynchronous icon results are
// marshaled back onto the loop before they touch the model.
package store

import (
	"context"
	"log/slog"

	"github.com/shelfhq/shelf/internal/dispatch"
	"github.com/shelfhq/shelf/pkg/types"
)

// IconFetcher resolves a link URL to an optional locally cached icon path.
// A false result is a normal outcome, not an error.
type IconFetcher interface {
	Fetch(ctx context.Context, url string) (path string, ok bool)
}

// Store holds the shelf collection and its persistence path.
type Store struct {
	path  string
	log   *slog.Logger
	exec  dispatch.Executor
	icons IconFetcher

	shelves []types.Shelf
	subs    []*subscription
	nextSub int
}

type subscription struct {
	id int
	fn func()
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithIconFetcher sets the collaborator used to backfill link icons. When
// nil, links simply keep their placeholder appearance.
func WithIconFetcher(f IconFetcher) Option {
	return func(s *Store) { s.icons = f }
}

// WithExecutor sets the executor that async completions are posted to.
// Defaults to inline execution.
func WithExecutor(e dispatch.Executor) Option {
	return func(s *Store) { s.exec = e }
}

// New creates a store persisting to the given document path. Call Load to
// read any existing document.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		log:  slog.Default(),
		exec: dispatch.Direct{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to run after every successful mutation. Delivery
// order is registration order. The returned function unregisters; it is
// idempotent and safe to call from inside a notification.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	sub := &subscription{id: s.nextSub, fn: fn}
	s.nextSub++
	s.subs = append(s.subs, sub)
	return func() {
		for i, existing := range s.subs {
			if existing.id == sub.id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// notify runs every subscriber in registration order. Iterates a snapshot
// so subscribers may unsubscribe during dispatch.
func (s *Store) notify() {
	snapshot := make([]*subscription, len(s.subs))
	copy(snapshot, s.subs)
	for _, sub := range snapshot {
		sub.fn()
	}
}

// Shelves returns a deep copy of the current shelf list.
func (s *Store) Shelves() []types.Shelf {
	out := make([]types.Shelf, len(s.shelves))
	for i, sh := range s.shelves {
		out[i] = sh.Clone()
	}
	return out
}

// Shelf returns a deep copy of the shelf with the given id.
func (s *Store) Shelf(id string) (types.Shelf, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.shelves[i].Clone(), true
	}
	return types.Shelf{}, false
}

// FindEntry returns a copy of the entry with the given id inside the given
// shelf.
func (s *Store) FindEntry(shelfID, entryID string) (types.Entry, bool) {
	i := s.indexOf(shelfID)
	if i < 0 {
		return types.Entry{}, false
	}
	return s.shelves[i].Entry(entryID)
}

// CreateShelf appends a new shelf with default geometry, persists, and
// returns a copy of it.
func (s *Store) CreateShelf(name string) types.Shelf {
	shelf := types.NewShelf(name)
	s.shelves = append(s.shelves, shelf)
	s.persist()
	s.notify()
	return shelf.Clone()
}

// DeleteShelf removes the shelf with the given id. No-op if absent.
func (s *Store) DeleteShelf(id string) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.shelves = append(s.shelves[:i], s.shelves[i+1:]...)
	s.persist()
	s.notify()
}

// AddEntry appends the entry to the shelf's sequence. Application, folder
// and link entries that duplicate an existing entry's dedup identity are a
// silent no-op; spacers, separators, snippets and sticky notes repeat
// freely.
func (s *Store) AddEntry(shelfID string, entry types.Entry) {
	i := s.indexOf(shelfID)
	if i < 0 {
		return
	}
	if key := entry.DedupKey(); key != "" {
		for _, existing := range s.shelves[i].Entries {
			if existing.DedupKey() == key {
				return
			}
		}
	}
	s.shelves[i].Entries = append(s.shelves[i].Entries, entry)
	s.persist()
	s.notify()
}

// AddLink synthesizes a link entry, appends it, and kicks off an
// asynchronous icon fetch. When the fetch resolves, the entry is re-located
// by id; if the shelf or entry is gone by then, the result is discarded.
func (s *Store) AddLink(shelfID, url, name string) {
	entry := types.NewLink(url, name)
	before := len(s.entriesOf(shelfID))
	s.AddEntry(shelfID, entry)
	if len(s.entriesOf(shelfID)) == before {
		// Duplicate URL; nothing was added, so nothing to backfill.
		return
	}
	if s.icons == nil {
		return
	}
	entryID := entry.ID
	go func() {
		path, ok := s.icons.Fetch(context.Background(), url)
		if !ok {
			return
		}
		s.exec.Post(func() {
			s.setIconPath(shelfID, entryID, path)
		})
	}()
}

// setIconPath backfills the cached icon path on a link entry, discarding
// the result if the target no longer exists.
func (s *Store) setIconPath(shelfID, entryID, path string) {
	i := s.indexOf(shelfID)
	if i < 0 {
		s.log.Debug("icon result discarded, shelf gone", "shelf", shelfID)
		return
	}
	j := s.shelves[i].EntryIndex(entryID)
	if j < 0 {
		s.log.Debug("icon result discarded, entry gone", "entry", entryID)
		return
	}
	s.shelves[i].Entries[j].IconPath = path
	s.persist()
	s.notify()
}

// AddSpacer appends a spacer entry.
func (s *Store) AddSpacer(shelfID string) {
	s.AddEntry(shelfID, types.NewSpacer())
}

// AddSeparator appends a separator entry.
func (s *Store) AddSeparator(shelfID string) {
	s.AddEntry(shelfID, types.NewSeparator())
}

// AddSnippet appends a snippet entry carrying the given text.
func (s *Store) AddSnippet(shelfID, name, content string) {
	s.AddEntry(shelfID, types.NewSnippet(name, content))
}

// AddStickyNote appends a sticky-note entry with empty content.
func (s *Store) AddStickyNote(shelfID, name string) {
	s.AddEntry(shelfID, types.NewStickyNote(name))
}

// UpdateStickyNoteContent replaces a sticky note's content in place. No-op
// if the shelf or entry is absent.
func (s *Store) UpdateStickyNoteContent(shelfID, entryID, content string) {
	i := s.indexOf(shelfID)
	if i < 0 {
		return
	}
	j := s.shelves[i].EntryIndex(entryID)
	if j < 0 {
		return
	}
	s.shelves[i].Entries[j].Content = content
	s.persist()
	s.notify()
}

// MoveEntry removes the entry at fromID's position and reinserts it at
// toID's position. No-op if either id is absent or they are equal.
func (s *Store) MoveEntry(shelfID, fromID, toID string) {
	i := s.indexOf(shelfID)
	if i < 0 {
		return
	}
	entries := s.shelves[i].Entries
	from := s.shelves[i].EntryIndex(fromID)
	to := s.shelves[i].EntryIndex(toID)
	if from < 0 || to < 0 || from == to {
		return
	}
	moved := entries[from]
	entries = append(entries[:from], entries[from+1:]...)
	entries = append(entries[:to], append([]types.Entry{moved}, entries[to:]...)...)
	s.shelves[i].Entries = entries
	s.persist()
	s.notify()
}

// RemoveEntry removes the entry with the given id. No-op if absent.
func (s *Store) RemoveEntry(shelfID, entryID string) {
	i := s.indexOf(shelfID)
	if i < 0 {
		return
	}
	j := s.shelves[i].EntryIndex(entryID)
	if j < 0 {
		return
	}
	s.shelves[i].Entries = append(s.shelves[i].Entries[:j], s.shelves[i].Entries[j+1:]...)
	s.persist()
	s.notify()
}

// UpdateShelfPosition writes a new origin for the shelf. No-op if absent.
func (s *Store) UpdateShelfPosition(id string, x, y float64) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.shelves[i].PositionX = x
	s.shelves[i].PositionY = y
	s.persist()
	s.notify()
}

// UpdateShelf replaces every field of the shelf with the given id. No-op if
// absent. The replacement keeps the original id.
func (s *Store) UpdateShelf(id string, shelf types.Shelf) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	shelf.ID = id
	s.shelves[i] = shelf.Clone()
	s.persist()
	s.notify()
}

func (s *Store) indexOf(id string) int {
	for i, sh := range s.shelves {
		if sh.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) entriesOf(shelfID string) []types.Entry {
	if i := s.indexOf(shelfID); i >= 0 {
		return s.shelves[i].Entries
	}
	return nil
}
