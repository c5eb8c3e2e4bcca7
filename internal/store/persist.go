// Document persistence: the whole shelf collection is serialized as one
// JSON array and written with the temp-file, fsync, rename pattern, so a
// reader never observes a partial document.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shelfhq/shelf/pkg/types"
)

// Load reads the persisted document. A missing file yields an empty
// collection. Any decode or validation failure resets the store to an empty
// collection and is logged, not returned: a corrupt document must never
// take the application down.
func (s *Store) Load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error("failed to read shelf document", "path", s.path, "error", err)
		}
		s.shelves = nil
		return
	}

	var shelves []types.Shelf
	if err := json.Unmarshal(data, &shelves); err != nil {
		s.log.Error("failed to decode shelf document, resetting", "path", s.path, "error", err)
		s.shelves = nil
		return
	}
	for _, sh := range shelves {
		if err := sh.Validate(); err != nil {
			s.log.Error("shelf document failed validation, resetting",
				"path", s.path, "shelf", sh.ID, "error", err)
			s.shelves = nil
			return
		}
	}
	s.shelves = shelves
}

// Save serializes the full collection and replaces the document atomically.
// Failures are logged; the in-memory state is kept and the next successful
// save recovers.
func (s *Store) Save() {
	s.persist()
}

// Reload re-reads the document from disk and notifies subscribers. Used by
// the external-change watcher.
func (s *Store) Reload() {
	s.Load()
	s.notify()
}

func (s *Store) persist() {
	if err := s.writeDocument(); err != nil {
		s.log.Error("failed to save shelf document", "path", s.path, "error", err)
	}
}

func (s *Store) writeDocument() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// Marshal a non-nil slice so an empty collection serializes as [].
	shelves := s.shelves
	if shelves == nil {
		shelves = []types.Shelf{}
	}
	data, err := json.MarshalIndent(shelves, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".shelves-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
