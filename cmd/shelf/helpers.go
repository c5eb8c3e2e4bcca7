// Shared helpers for shelf CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shelfhq/shelf/internal/favicon"
	"github.com/shelfhq/shelf/internal/paths"
	"github.com/shelfhq/shelf/internal/store"
	"github.com/shelfhq/shelf/pkg/types"
)

// openStore resolves the data directory and loads the shelf document. One-
// shot commands mutate synchronously and exit, so the store gets no icon
// fetcher and no executor; commands that want a favicon fetch it inline.
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	st := store.New(paths.DocumentPath(dataDir), store.WithLogger(logger))
	st.Load()
	return st, nil
}

// openFavicons returns the favicon fetcher over the data directory's cache.
// The caller must defer Close.
func openFavicons() (*favicon.Fetcher, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	return favicon.New(paths.FaviconDir(dataDir),
		favicon.WithLogger(logger),
		favicon.WithRetryWindow(time.Duration(cfg.GetInt(cfgKeyRetryHours))*time.Hour))
}

// findShelf resolves a shelf reference: an exact id first, then a unique
// case-insensitive name match.
func findShelf(st *store.Store, ref string) (types.Shelf, error) {
	if sh, ok := st.Shelf(ref); ok {
		return sh, nil
	}

	var matches []types.Shelf
	for _, sh := range st.Shelves() {
		if strings.EqualFold(sh.Name, ref) {
			matches = append(matches, sh)
		}
	}
	switch len(matches) {
	case 0:
		return types.Shelf{}, fmt.Errorf("no shelf named %q: %w", ref, types.ErrShelfNotFound)
	case 1:
		return matches[0], nil
	default:
		return types.Shelf{}, fmt.Errorf("shelf name %q is ambiguous, use an id", ref)
	}
}

// findEntry resolves an entry reference inside a shelf: an exact id, or a
// 1-based position as shown by list.
func findEntry(sh types.Shelf, ref string) (types.Entry, error) {
	if e, ok := sh.Entry(ref); ok {
		return e, nil
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(sh.Entries) {
			return types.Entry{}, fmt.Errorf("entry %d out of range 1-%d: %w", n, len(sh.Entries), types.ErrEntryNotFound)
		}
		return sh.Entries[n-1], nil
	}
	return types.Entry{}, fmt.Errorf("no entry %q in shelf %q: %w", ref, sh.Name, types.ErrEntryNotFound)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// entrySummary is the one-line list rendering of an entry.
func entrySummary(e types.Entry) string {
	switch e.Kind {
	case types.KindApplication, types.KindFolder:
		return fmt.Sprintf("%-10s %s  (%s)", e.Kind, e.Name, e.Path)
	case types.KindLink:
		return fmt.Sprintf("%-10s %s  (%s)", e.Kind, e.Name, e.URL)
	case types.KindSnippet, types.KindStickyNote:
		return fmt.Sprintf("%-10s %s", e.Kind, e.Name)
	default:
		return e.Kind
	}
}
