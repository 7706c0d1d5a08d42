package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cognicore/keyphrase/pkg/keyphrase/internalerr"
)

func writeJSONL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.jsonl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromJSONL(t *testing.T) {
	path := writeJSONL(t, `{"url":"https://example.com/1","title":"Graph ranking","text":"nodes and edges"}

{"url":"https://example.com/2","html":"<p>Hello <b>world</b></p>"}
`)

	items, err := LoadFromJSONL(path)
	if err != nil {
		t.Fatalf("LoadFromJSONL: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if got := items[0].Text(); got != "Graph ranking\nnodes and edges" {
		t.Errorf("Unexpected text: %q", got)
	}
	if got := items[1].Text(); got != "Hello world" {
		t.Errorf("Expected HTML fallback, got %q", got)
	}
}

func TestLoadFromJSONLSkipsMalformed(t *testing.T) {
	path := writeJSONL(t, `{"text":"first"}
{not json
{"text":"second"}
`)

	items, err := LoadFromJSONL(path)
	if err != nil {
		t.Fatalf("LoadFromJSONL: %v", err)
	}
	if len(items) != 2 || items[1].Body != "second" {
		t.Errorf("Malformed line should be skipped, got %+v", items)
	}
}

func TestLoadFromJSONLEmpty(t *testing.T) {
	path := writeJSONL(t, "\n{bad}\n")

	if _, err := LoadFromJSONL(path); !errors.Is(err, internalerr.ErrEmptyCorpus) {
		t.Errorf("Expected ErrEmptyCorpus, got %v", err)
	}
	if _, err := LoadFromJSONL(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Error("Missing file should error")
	}
}

func TestScanStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	r := strings.NewReader("{\"text\":\"a\"}\n{\"text\":\"b\"}\n{\"text\":\"c\"}\n")

	seen := 0
	n, err := Scan(r, "test", func(Item) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Expected callback error, got %v", err)
	}
	if n != 1 || seen != 2 {
		t.Errorf("Expected 1 counted item after 2 calls, got n=%d seen=%d", n, seen)
	}
}

func TestHTMLText(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", "<p>Keyword extraction</p>", "Keyword extraction"},
		{"nested", "<div><h1>Title</h1><p>Body <i>text</i></p></div>", "Title Body text"},
		{"script and style", "<html><head><title>x</title><style>p{}</style></head><body><script>var a=1</script><p>kept</p></body></html>", "kept"},
		{"entities", "<p>fish &amp; chips</p>", "fish & chips"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLText(tt.src); got != tt.want {
				t.Errorf("HTMLText(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestItemTextPrefersBody(t *testing.T) {
	it := Item{Body: "plain body", HTML: "<p>ignored</p>"}
	if got := it.Text(); got != "plain body" {
		t.Errorf("Expected body text, got %q", got)
	}
}
