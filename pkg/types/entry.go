package types

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Entry kinds. Each entry carries exactly one kind and the payload fields
// belonging to that kind; the constructors below are the only supported way
// to build entries.
const (
	KindApplication = "app"
	KindFolder      = "folder"
	KindLink        = "link"
	KindSnippet     = "snippet"
	KindStickyNote  = "stickyNote"
	KindSpacer      = "spacer"
	KindSeparator   = "separator"
)

// validKinds is the set of recognized entry kind values.
var validKinds = map[string]bool{
	KindApplication: true,
	KindFolder:      true,
	KindLink:        true,
	KindSnippet:     true,
	KindStickyNote:  true,
	KindSpacer:      true,
	KindSeparator:   true,
}

// Entry is one item inside a shelf. The JSON field names are the on-disk
// document format and must not change.
//
// Payload fields are kind-scoped: Path belongs to app/folder entries, URL
// and IconPath to link entries, Content to snippet and sticky-note entries.
// Content stays mutable after creation for sticky notes only; link entries
// accept an icon backfill; everything else is immutable once built.
type Entry struct {
	ID       string `json:"id"`
	Kind     string `json:"type"`
	Name     string `json:"displayName"`
	Path     string `json:"appPath,omitempty"`
	URL      string `json:"urlString,omitempty"`
	IconPath string `json:"faviconPath,omitempty"`
	Content  string `json:"snippetContent,omitempty"`
}

// newID generates a UUID v7 id, falling back to v4 if v7
// generation fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// NewApplication builds an application entry for the given filesystem path.
// The display name is the base name with any ".app" suffix removed. The
// path is not checked for existence; that is the caller's concern.
func NewApplication(path string) Entry {
	return Entry{
		ID:   newID(),
		Kind: KindApplication,
		Name: displayNameForPath(path),
		Path: path,
	}
}

// NewFolder builds a folder entry for the given filesystem path.
func NewFolder(path string) Entry {
	return Entry{
		ID:   newID(),
		Kind: KindFolder,
		Name: displayNameForPath(path),
		Path: path,
	}
}

// NewLink builds a link entry. The icon path starts empty and is backfilled
// asynchronously by the store.
func NewLink(url, name string) Entry {
	return Entry{
		ID:   newID(),
		Kind: KindLink,
		Name: name,
		URL:  url,
	}
}

// NewSnippet builds a snippet entry carrying free text.
func NewSnippet(name, content string) Entry {
	return Entry{
		ID:      newID(),
		Kind:    KindSnippet,
		Name:    name,
		Content: content,
	}
}

// NewStickyNote builds a sticky-note entry with empty content.
func NewStickyNote(name string) Entry {
	if name == "" {
		name = "Sticky Note"
	}
	return Entry{
		ID:   newID(),
		Kind: KindStickyNote,
		Name: name,
	}
}

// NewSpacer builds a spacer entry.
func NewSpacer() Entry {
	return Entry{ID: newID(), Kind: KindSpacer}
}

// NewSeparator builds a separator entry.
func NewSeparator() Entry {
	return Entry{ID: newID(), Kind: KindSeparator}
}

// DedupKey returns the identity used for duplicate suppression at insertion
// time. Application and folder entries share one path-based identity, so an
// application and a folder pointing at the same path count as duplicates;
// links dedup by URL. The empty key means the entry is never deduplicated
// (snippets, sticky notes, spacers, separators).
func (e Entry) DedupKey() string {
	switch e.Kind {
	case KindApplication, KindFolder:
		return "path\x00" + e.Path
	case KindLink:
		return "url\x00" + e.URL
	default:
		return ""
	}
}

// Validate checks that the entry has an id, a recognized kind, and a payload
// matching that kind. Used on document load to reject malformed records.
func (e Entry) Validate() error {
	if e.ID == "" {
		return ErrInvalidEntry
	}
	if !validKinds[e.Kind] {
		return ErrInvalidKind
	}
	switch e.Kind {
	case KindApplication, KindFolder:
		if e.Path == "" {
			return ErrInvalidEntry
		}
	case KindLink:
		if e.URL == "" {
			return ErrInvalidEntry
		}
	}
	return nil
}

// displayNameForPath derives a human-readable name from a filesystem path.
func displayNameForPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, ".app")
}
