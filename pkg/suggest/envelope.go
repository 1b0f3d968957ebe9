package suggest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-navfilter/pkg/filter"
)

// Page is one page of suggestions.
type Page struct {
	Items []filter.Item
	More  bool
}

// ItemMapper turns one decoded result entry into an item. Returning false
// skips the entry.
type ItemMapper func(entry map[string]any) (filter.Item, bool)

// DefaultMapper reads the id and text keys. Entries without an id are skipped.
func DefaultMapper(entry map[string]any) (filter.Item, bool) {
	id := pickValue(entry, "id")
	if id == "" {
		return filter.Item{}, false
	}
	return filter.Item{ID: id, Text: pickValue(entry, "text")}, true
}

// FieldMapper reads the id and text from the named (dotted) paths.
func FieldMapper(idPath, textPath string) ItemMapper {
	return func(entry map[string]any) (filter.Item, bool) {
		id := pickValue(entry, idPath)
		if id == "" {
			return filter.Item{}, false
		}
		return filter.Item{ID: id, Text: pickValue(entry, textPath)}, true
	}
}

type envelope struct {
	Results *[]json.RawMessage `json:"results"`
	More    *bool              `json:"more"`
}

// DecodePage reads a suggestion envelope from r.
func DecodePage(r io.Reader, mapper ItemMapper) (Page, error) {
	if mapper == nil {
		mapper = DefaultMapper
	}
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return Page{}, &ProtocolError{Reason: "decode envelope", Err: err}
	}
	if env.Results == nil {
		return Page{}, &ProtocolError{Reason: "missing results"}
	}
	if env.More == nil {
		return Page{}, &ProtocolError{Reason: "missing more"}
	}

	page := Page{More: *env.More, Items: make([]filter.Item, 0, len(*env.Results))}
	for idx, raw := range *env.Results {
		entry, err := decodeEntry(raw)
		if err != nil {
			return Page{}, &ProtocolError{Reason: fmt.Sprintf("results[%d]", idx), Err: err}
		}
		item, ok := mapper(entry)
		if !ok {
			continue
		}
		item.Text = sanitizeText(item.Text)
		page.Items = append(page.Items, item)
	}
	return page, nil
}

func decodeEntry(raw json.RawMessage) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var entry map[string]any
	if err := dec.Decode(&entry); err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("entry is not an object")
	}
	return entry, nil
}

func pickValue(m map[string]any, path string) string {
	if path == "" {
		return ""
	}
	cur := any(m)
	for _, segment := range strings.Split(path, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = node[segment]
	}
	switch v := cur.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips markup from server supplied labels and returns plain text.
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !strings.ContainsAny(trimmed, "<>&") {
		return trimmed
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(trimmed)))
}
