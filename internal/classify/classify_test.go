package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfhq/shelf/pkg/types"
)

func TestClassify_FilePathsWinOverText(t *testing.T) {
	res := Classify(Payload{
		FilePaths: []string{"/Applications/Foo.app"},
		Text:      "hello",
	})

	require.True(t, res.Handled)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, types.KindApplication, res.Entries[0].Kind)
	assert.Equal(t, "/Applications/Foo.app", res.Entries[0].Path)
	assert.Equal(t, "Foo", res.Entries[0].Name)
}

func TestClassify_FilePaths(t *testing.T) {
	isDir := func(path string) bool { return path == "/Users/me/Documents" }

	tests := []struct {
		name     string
		paths    []string
		wantKind []string
	}{
		{
			name:     "app bundle",
			paths:    []string{"/Applications/Foo.app"},
			wantKind: []string{types.KindApplication},
		},
		{
			name:     "directory becomes folder",
			paths:    []string{"/Users/me/Documents"},
			wantKind: []string{types.KindFolder},
		},
		{
			name:     "plain file stays application",
			paths:    []string{"/usr/local/bin/tool"},
			wantKind: []string{types.KindApplication},
		},
		{
			name:     "multiple paths all classified",
			paths:    []string{"/Applications/Foo.app", "/Users/me/Documents"},
			wantKind: []string{types.KindApplication, types.KindFolder},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(Payload{FilePaths: tt.paths, IsDir: isDir})
			require.True(t, res.Handled)
			require.Len(t, res.Entries, len(tt.wantKind))
			for i, kind := range tt.wantKind {
				assert.Equal(t, kind, res.Entries[i].Kind)
			}
		})
	}
}

func TestClassify_Text(t *testing.T) {
	tests := []struct {
		name        string
		payload     Payload
		wantKind    string
		wantURL     string
		wantContent string
		wantName    string
	}{
		{
			name:     "explicit https scheme",
			payload:  Payload{Text: "https://example.com/page"},
			wantKind: types.KindLink,
			wantURL:  "https://example.com/page",
			wantName: "example.com",
		},
		{
			name:     "explicit http scheme",
			payload:  Payload{Text: "http://example.com"},
			wantKind: types.KindLink,
			wantURL:  "http://example.com",
		},
		{
			name:     "scheme-less domain with path gets https prefix",
			payload:  Payload{Text: "github.com/user/repo"},
			wantKind: types.KindLink,
			wantURL:  "https://github.com/user/repo",
			wantName: "github.com",
		},
		{
			name:     "bare domain",
			payload:  Payload{Text: "news.ycombinator.com"},
			wantKind: types.KindLink,
			wantURL:  "https://news.ycombinator.com",
		},
		{
			name:        "text with whitespace is a snippet",
			payload:     Payload{Text: "buy milk\nand eggs"},
			wantKind:    types.KindSnippet,
			wantContent: "buy milk\nand eggs",
		},
		{
			name:        "numeric tld is a snippet",
			payload:     Payload{Text: "file.v2"},
			wantKind:    types.KindSnippet,
			wantContent: "file.v2",
		},
		{
			name:        "single word without dot is a snippet",
			payload:     Payload{Text: "hello"},
			wantKind:    types.KindSnippet,
			wantContent: "hello",
		},
		{
			name:        "surrounding whitespace trimmed before link check",
			payload:     Payload{Text: "  example.com  "},
			wantKind:    types.KindLink,
			wantURL:     "https://example.com",
		},
		{
			name:     "utf8 alternate used when canonical empty",
			payload:  Payload{UTF8Text: "example.org"},
			wantKind: types.KindLink,
			wantURL:  "https://example.org",
		},
		{
			name:        "string objects fallback",
			payload:     Payload{Strings: []string{"", "plain words here"}},
			wantKind:    types.KindSnippet,
			wantContent: "plain words here",
		},
		{
			name:        "html stripped to snippet",
			payload:     Payload{HTML: "<p>buy <b>milk</b></p><script>x()</script>"},
			wantKind:    types.KindSnippet,
			wantContent: "buy milk",
		},
		{
			name:     "html stripped to link",
			payload:  Payload{HTML: "<a href=\"x\">example.com</a>"},
			wantKind: types.KindLink,
			wantURL:  "https://example.com",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(tt.payload)
			require.True(t, res.Handled)
			require.Len(t, res.Entries, 1)
			e := res.Entries[0]
			assert.Equal(t, tt.wantKind, e.Kind)
			if tt.wantURL != "" {
				assert.Equal(t, tt.wantURL, e.URL)
			}
			if tt.wantContent != "" {
				assert.Equal(t, tt.wantContent, e.Content)
			}
			if tt.wantName != "" {
				assert.Equal(t, tt.wantName, e.Name)
			}
		})
	}
}

func TestClassify_SnippetKeepsRawText(t *testing.T) {
	raw := "  buy milk\nand eggs\n"
	res := Classify(Payload{Text: raw})
	require.True(t, res.Handled)
	assert.Equal(t, raw, res.Entries[0].Content, "snippet carries the raw, untrimmed text")
	assert.Equal(t, "buy milk", res.Entries[0].Name[:8])
}

func TestClassify_BareURLFallback(t *testing.T) {
	tests := []struct {
		name        string
		payload     Payload
		wantHandled bool
		wantURL     string
	}{
		{
			name:        "https URL object with no text",
			payload:     Payload{URL: "https://example.com/x"},
			wantHandled: true,
			wantURL:     "https://example.com/x",
		},
		{
			name:        "non-web scheme ignored",
			payload:     Payload{URL: "ftp://example.com"},
			wantHandled: false,
		},
		{
			name:        "text wins over URL object",
			payload:     Payload{Text: "plain words", URL: "https://example.com"},
			wantHandled: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(tt.payload)
			assert.Equal(t, tt.wantHandled, res.Handled)
			if tt.wantURL != "" {
				require.Len(t, res.Entries, 1)
				assert.Equal(t, types.KindLink, res.Entries[0].Kind)
				assert.Equal(t, tt.wantURL, res.Entries[0].URL)
			}
		})
	}
}

func TestClassify_Unhandled(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
	}{
		{name: "empty payload", payload: Payload{}},
		{name: "whitespace only", payload: Payload{Text: "   \n\t "}},
		{name: "rtf alone falls through", payload: Payload{RTF: `{\rtf1 hello}`}},
		{name: "html with no text", payload: Payload{HTML: "<div><span></span></div>"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(tt.payload)
			assert.False(t, res.Handled)
			assert.Empty(t, res.Entries)
		})
	}
}

func TestClassifyClipboard_SkipsFilePaths(t *testing.T) {
	res := ClassifyClipboard(Payload{
		FilePaths: []string{"/Applications/Foo.app"},
		Text:      "hello world",
	})

	require.True(t, res.Handled)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, types.KindSnippet, res.Entries[0].Kind)
}

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "tags stripped", in: "<p>hello <b>world</b></p>", want: "hello world"},
		{name: "script skipped", in: "<script>var x=1</script>text", want: "text"},
		{name: "style skipped", in: "<style>p{}</style>text", want: "text"},
		{name: "whitespace collapsed", in: "<div>a\n\n  b</div>", want: "a b"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, htmlToText(tt.in))
		})
	}
}
