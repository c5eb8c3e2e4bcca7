package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfhq/shelf/internal/dispatch"
	"github.com/shelfhq/shelf/pkg/types"
)

func TestWatch_ReloadsOnExternalWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shelves.json")

	// The debounced reload is posted onto the loop, like in a live session.
	loop := dispatch.NewLoop()
	s := New(path, WithExecutor(loop))
	s.Load()

	notified := make(chan struct{}, 1)
	s.Subscribe(func() {
		select {
		case notified <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)
	require.NoError(t, s.Watch(ctx))

	// Another process replaces the document.
	external := []types.Shelf{types.NewShelf("from outside")}
	data, err := json.Marshal(external)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	select {
	case <-notified:
	case <-time.After(5 * time.Second):
		t.Fatal("external write never triggered a reload")
	}

	shelves := s.Shelves()
	require.Len(t, shelves, 1)
	assert.Equal(t, "from outside", shelves[0].Name)
}

func TestWatch_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "shelves.json"))

	notified := make(chan struct{}, 1)
	s.Subscribe(func() {
		select {
		case notified <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Watch(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-notified:
		t.Fatal("unrelated file must not trigger a reload")
	case <-time.After(500 * time.Millisecond):
	}
}
