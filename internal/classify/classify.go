// Package classify turns a drag or paste payload into typed shelf entries.
// Classification is a pure function: no icon fetching, no store mutation,
// no filesystem checks. An unmatched payload is reported as unhandled, not
// as an error.
package classify

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/shelfhq/shelf/pkg/types"
)

// Payload is the surface a drag or clipboard read exposes. Fields are
// optional; empty fields simply do not participate. RTF is accepted as a
// pasteboard type but never parsed specially, so it falls through the
// plain-text and HTML fallbacks.
type Payload struct {
	FilePaths []string // filesystem paths, highest priority
	Text      string   // canonical plain-text representation
	UTF8Text  string   // alternate UTF-8 plain-text representation
	Strings   []string // generic string-object reading fallback
	HTML      string   // HTML representation, stripped to plain text
	RTF       string   // accepted but not parsed
	URL       string   // generic URL object, lowest-priority fallback

	// IsDir reports whether a file path is a directory. Left nil, every
	// non-".app" path still classifies as an application, matching the
	// original drop behavior for plain files.
	IsDir func(path string) bool
}

// Result is the classifier's verdict. Handled is false when no rule
// matched; Entries is empty in that case.
type Result struct {
	Entries []types.Entry
	Handled bool
}

// domainPattern matches scheme-less host-shaped text: dot-separated labels
// with an alphabetic final label of at least two characters, optionally
// followed by a path.
var domainPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z]{2,})+(/.*)?$`)

// Classify applies the full priority chain: file paths, extracted text,
// bare URL object, unhandled.
func Classify(p Payload) Result {
	if len(p.FilePaths) > 0 {
		entries := make([]types.Entry, 0, len(p.FilePaths))
		for _, path := range p.FilePaths {
			entries = append(entries, entryForPath(p, path))
		}
		return Result{Entries: entries, Handled: true}
	}
	return classifyText(p)
}

// ClassifyClipboard applies the paste chain, which skips the file-path
// step.
func ClassifyClipboard(p Payload) Result {
	return classifyText(p)
}

func classifyText(p Payload) Result {
	text := extractText(p)
	trimmed := strings.TrimSpace(text)
	if trimmed != "" {
		if looksLikeURL(trimmed) {
			urlString := trimmed
			if !strings.HasPrefix(urlString, "http://") && !strings.HasPrefix(urlString, "https://") {
				urlString = "https://" + urlString
			}
			return Result{
				Entries: []types.Entry{types.NewLink(urlString, linkName(urlString))},
				Handled: true,
			}
		}
		return Result{
			Entries: []types.Entry{types.NewSnippet(snippetName(trimmed), text)},
			Handled: true,
		}
	}

	// Bare URL object with no text: a dragged link.
	if p.URL != "" {
		if u, err := url.Parse(p.URL); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
			return Result{
				Entries: []types.Entry{types.NewLink(p.URL, linkName(p.URL))},
				Handled: true,
			}
		}
	}

	return Result{}
}

// extractText tries the text sub-sources in order and returns the first
// whose trimmed form is non-empty.
func extractText(p Payload) string {
	if strings.TrimSpace(p.Text) != "" {
		return p.Text
	}
	if strings.TrimSpace(p.UTF8Text) != "" {
		return p.UTF8Text
	}
	for _, s := range p.Strings {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	if p.HTML != "" {
		if plain := htmlToText(p.HTML); strings.TrimSpace(plain) != "" {
			return plain
		}
	}
	return ""
}

// looksLikeURL reports whether trimmed text should classify as a link: an
// explicit http(s) scheme, or whitespace-free domain-shaped text.
func looksLikeURL(text string) bool {
	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
		return true
	}
	if strings.ContainsAny(text, " \t\n\r") {
		return false
	}
	return domainPattern.MatchString(text)
}

func entryForPath(p Payload, path string) types.Entry {
	if strings.HasSuffix(path, ".app") {
		return types.NewApplication(path)
	}
	if p.IsDir != nil && p.IsDir(path) {
		return types.NewFolder(path)
	}
	return types.NewApplication(path)
}

// linkName is the display name for a link entry: the URL host, or the raw
// string when it does not parse.
func linkName(urlString string) string {
	if u, err := url.Parse(urlString); err == nil && u.Host != "" {
		return u.Host
	}
	return urlString
}

// snippetName derives a snippet's display name from its first 30 trimmed
// characters.
func snippetName(trimmed string) string {
	runes := []rune(trimmed)
	if len(runes) > 30 {
		runes = runes[:30]
	}
	name := string(runes)
	if name == "" {
		return "Snippet"
	}
	return name
}
