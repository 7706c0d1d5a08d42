package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cognicore/keyphrase/pkg/keyphrase/internalerr"
)

// maxLine bounds a single JSONL record
const maxLine = 16 << 20

// Item is one corpus document
type Item struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Body  string `json:"text"`
	HTML  string `json:"html"`
}

// Text returns the title followed by the body. An item without a plain
// text body falls back to the visible text of its HTML.
func (it Item) Text() string {
	body := it.Body
	if strings.TrimSpace(body) == "" && it.HTML != "" {
		body = HTMLText(it.HTML)
	}
	if it.Title == "" {
		return body
	}
	if body == "" {
		return it.Title
	}
	return it.Title + "\n" + body
}

// Scan reads JSONL items from r and calls fn for each one. Malformed
// lines are logged and skipped; an error from fn stops the scan.
func Scan(r io.Reader, name string, fn func(Item) error) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	count := 0
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var item Item
		if err := json.Unmarshal([]byte(text), &item); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", line, name, err)
			continue
		}
		if err := fn(item); err != nil {
			return count, err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("read %s: %w", name, err)
	}
	return count, nil
}

// Each streams every item of the JSONL file at path through fn
func Each(path string, fn func(Item) error) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	n, err := Scan(f, path, fn)
	if err != nil {
		return n, err
	}
	if n == 0 {
		return 0, fmt.Errorf("no valid items found in %s: %w", path, internalerr.ErrEmptyCorpus)
	}
	return n, nil
}

// LoadFromJSONL loads all items from a JSONL file
func LoadFromJSONL(path string) ([]Item, error) {
	var items []Item
	if _, err := Each(path, func(it Item) error {
		items = append(items, it)
		return nil
	}); err != nil {
		return nil, err
	}
	return items, nil
}
