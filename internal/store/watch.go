// External-change watcher: when another process rewrites the shelf
// document, the store reloads it and re-notifies subscribers. Reloads are
// debounced because an atomic rename shows up as a burst of events.
package store

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 200 * time.Millisecond

// Watch observes the document's directory until ctx is done. Write, create
// and rename events on the document path schedule a debounced Reload on the
// store's executor. The store's own saves also trigger a reload; that
// reload reads back exactly what was written, so it converges to a no-op.
// The watcher is optional; one-shot CLI commands never run it.
func (s *Store) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Watch the directory, not the file: the atomic rename replaces the
	// inode, which would silently detach a file-level watch.
	if err := fsw.Add(filepath.Dir(s.path)); err != nil {
		fsw.Close()
		return err
	}

	go func() {
		defer fsw.Close()

		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(s.path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(watchDebounce, func() {
					s.exec.Post(s.Reload)
				})
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				s.log.Warn("shelf document watcher error", "error", err)
			}
		}
	}()

	return nil
}
