package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfhq/shelf/internal/store"
	"github.com/shelfhq/shelf/pkg/types"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "shelves.json"))
}

func TestFindShelf(t *testing.T) {
	st := testStore(t)
	work := st.CreateShelf("Work")
	st.CreateShelf("Play")

	t.Run("by id", func(t *testing.T) {
		sh, err := findShelf(st, work.ID)
		require.NoError(t, err)
		assert.Equal(t, "Work", sh.Name)
	})

	t.Run("by name case-insensitive", func(t *testing.T) {
		sh, err := findShelf(st, "work")
		require.NoError(t, err)
		assert.Equal(t, work.ID, sh.ID)
	})

	t.Run("unknown reference", func(t *testing.T) {
		_, err := findShelf(st, "nope")
		assert.ErrorIs(t, err, types.ErrShelfNotFound)
	})

	t.Run("ambiguous name", func(t *testing.T) {
		st.CreateShelf("work")
		_, err := findShelf(st, "Work")
		assert.Error(t, err)
	})
}

func TestFindEntry(t *testing.T) {
	st := testStore(t)
	sh := st.CreateShelf("Work")
	st.AddSnippet(sh.ID, "first", "a")
	st.AddSnippet(sh.ID, "second", "b")
	sh, _ = st.Shelf(sh.ID)

	t.Run("by id", func(t *testing.T) {
		e, err := findEntry(sh, sh.Entries[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "second", e.Name)
	})

	t.Run("by 1-based index", func(t *testing.T) {
		e, err := findEntry(sh, "1")
		require.NoError(t, err)
		assert.Equal(t, "first", e.Name)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := findEntry(sh, "3")
		assert.ErrorIs(t, err, types.ErrEntryNotFound)
	})

	t.Run("unknown reference", func(t *testing.T) {
		_, err := findEntry(sh, "nope")
		assert.ErrorIs(t, err, types.ErrEntryNotFound)
	})
}

func TestSnippetName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "short text", text: "hello", want: "hello"},
		{name: "trims whitespace", text: "  hi  ", want: "hi"},
		{name: "caps at 30 runes", text: "aaaaaaaaaabbbbbbbbbbccccccccccdd", want: "aaaaaaaaaabbbbbbbbbbcccccccccc"},
		{name: "empty falls back", text: "   ", want: "Snippet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, snippetName(tt.text))
		})
	}
}

func TestCapRunes(t *testing.T) {
	assert.Equal(t, "hél", capRunes("héllo", 3))
	assert.Equal(t, "short", capRunes("short", 500))
}
