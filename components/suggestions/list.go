package suggestions

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/goliatone/go-navfilter/pkg/filter"
)

//go:embed data/sample_users.txt data/sample_resources.txt
var dataFS embed.FS

const (
	usersListPath     = "data/sample_users.txt"
	resourcesListPath = "data/sample_resources.txt"
)

type catalogue struct {
	path  string
	once  sync.Once
	items []filter.Item
	err   error
}

func (c *catalogue) load() ([]filter.Item, error) {
	c.once.Do(func() {
		f, err := dataFS.Open(c.path)
		if err != nil {
			c.err = err
			return
		}
		defer func() { _ = f.Close() }()
		c.items, c.err = LoadItems(f)
	})
	if c.err != nil {
		return nil, c.err
	}
	return append([]filter.Item{}, c.items...), nil
}

var (
	users     = &catalogue{path: usersListPath}
	resources = &catalogue{path: resourcesListPath}
)

// DefaultItems returns the embedded sample user catalogue.
func DefaultItems() ([]filter.Item, error) {
	return users.load()
}

// DefaultResources returns the embedded sample project catalogue.
func DefaultResources() ([]filter.Item, error) {
	return resources.load()
}

// LoadItems reads one item per line as "id<TAB>text". Lines without a tab
// use the id as text; blank lines and # comments are skipped, as are repeated
// ids.
func LoadItems(r io.Reader) ([]filter.Item, error) {
	if r == nil {
		return nil, fmt.Errorf("suggestions: missing reader")
	}

	scanner := bufio.NewScanner(r)
	items := make([]filter.Item, 0, 64)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, text, found := strings.Cut(line, "\t")
		id = strings.TrimSpace(id)
		text = strings.TrimSpace(text)
		if !found || text == "" {
			text = id
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		items = append(items, filter.Item{ID: id, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
