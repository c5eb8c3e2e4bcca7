// Package favicon caches link icons on disk. Given a link URL it yields an
// optional path to a locally cached image: cache hit, otherwise a primary
// lookup service, otherwise a direct same-origin /favicon.ico. Every
// failure degrades to "no icon"; nothing here returns an error to the
// store.
package favicon

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// primaryFormat is the high-quality lookup service, keyed by host.
	primaryFormat = "https://www.google.com/s2/favicons?domain=%s&sz=128"
	// fallbackFormat is the same-origin direct fallback.
	fallbackFormat = "https://%s/favicon.ico"

	// defaultRetryWindow is how long a recorded miss suppresses refetching.
	defaultRetryWindow = 24 * time.Hour

	maxIconBytes = 1 << 20
)

// Fetcher resolves link URLs to cached icon paths.
type Fetcher struct {
	cacheDir    string
	client      *http.Client
	log         *slog.Logger
	idx         *index
	retryWindow time.Duration

	primaryFormat  string
	fallbackFormat string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(f *Fetcher) { f.log = log }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithRetryWindow overrides how long a recorded miss suppresses refetching.
func WithRetryWindow(d time.Duration) Option {
	return func(f *Fetcher) { f.retryWindow = d }
}

// WithEndpoints overrides the lookup endpoints. Both are format strings
// taking the URL host. Used by tests to point at a local server.
func WithEndpoints(primary, fallback string) Option {
	return func(f *Fetcher) {
		f.primaryFormat = primary
		f.fallbackFormat = fallback
	}
}

// New creates a fetcher caching into cacheDir. The directory and the lookup
// index inside it are created on first use.
func New(cacheDir string, opts ...Option) (*Fetcher, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating favicon cache dir: %w", err)
	}

	f := &Fetcher{
		cacheDir:       cacheDir,
		client:         &http.Client{Timeout: 15 * time.Second},
		log:            slog.Default(),
		retryWindow:    defaultRetryWindow,
		primaryFormat:  primaryFormat,
		fallbackFormat: fallbackFormat,
	}
	for _, opt := range opts {
		opt(f)
	}

	idx, err := openIndex(filepath.Join(cacheDir, "icons.db"))
	if err != nil {
		return nil, err
	}
	f.idx = idx
	return f, nil
}

// Close releases the lookup index.
func (f *Fetcher) Close() error {
	return f.idx.close()
}

// CacheKey is the lossy filename sanitization of a URL. Distinct URLs can
// sanitize identically and then share a cache file; the original behavior
// accepts this, and the sqlite index still keeps their records separate.
func CacheKey(urlString string) string {
	safe := strings.NewReplacer("://", "_", "/", "_", ".", "_").Replace(urlString)
	runes := []rune(safe)
	if len(runes) > 80 {
		runes = runes[:80]
	}
	return string(runes) + ".png"
}

// CachedPath returns the cache file path for a URL if the file exists.
func (f *Fetcher) CachedPath(urlString string) (string, bool) {
	path := filepath.Join(f.cacheDir, CacheKey(urlString))
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// Fetch resolves an icon for the URL: cache file, then a fresh-enough
// recorded miss, then the primary service, then the direct fallback. A
// false result is the normal miss outcome, never an error.
func (f *Fetcher) Fetch(ctx context.Context, urlString string) (string, bool) {
	if path, ok := f.CachedPath(urlString); ok {
		return path, true
	}

	if _, ok, checkedAt, found, err := f.idx.lookup(urlString); err != nil {
		f.log.Warn("icon index lookup failed", "url", urlString, "error", err)
	} else if found && !ok && time.Since(checkedAt) < f.retryWindow {
		return "", false
	}

	u, err := url.Parse(urlString)
	if err != nil || u.Host == "" {
		f.recordMiss(urlString)
		return "", false
	}

	for _, lookup := range []string{
		fmt.Sprintf(f.primaryFormat, u.Host),
		fmt.Sprintf(f.fallbackFormat, u.Host),
	} {
		img, ok := f.fetchImage(ctx, lookup)
		if !ok {
			continue
		}
		path, err := f.saveImage(urlString, img)
		if err != nil {
			f.log.Warn("failed to save favicon", "url", urlString, "error", err)
			break
		}
		if err := f.idx.record(urlString, path, true); err != nil {
			f.log.Warn("icon index record failed", "url", urlString, "error", err)
		}
		return path, true
	}

	f.recordMiss(urlString)
	return "", false
}

func (f *Fetcher) recordMiss(urlString string) {
	if err := f.idx.record(urlString, "", false); err != nil {
		f.log.Warn("icon index record failed", "url", urlString, "error", err)
	}
}

// fetchImage downloads one candidate icon. Anything other than a 200
// response with an image body counts as a miss.
func (f *Fetcher) fetchImage(ctx context.Context, lookup string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookup, nil)
	if err != nil {
		return nil, false
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxIconBytes))
	if err != nil || len(body) == 0 {
		return nil, false
	}
	if !strings.HasPrefix(http.DetectContentType(body), "image/") {
		return nil, false
	}
	return body, true
}

// saveImage writes the icon atomically into the cache dir.
func (f *Fetcher) saveImage(urlString string, img []byte) (string, error) {
	path := filepath.Join(f.cacheDir, CacheKey(urlString))
	tmp, err := os.CreateTemp(f.cacheDir, ".icon-*.tmp")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(img); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	return path, nil
}
