package suggestions

import (
	"sort"
	"strings"

	"github.com/goliatone/go-navfilter/pkg/filter"
)

// Result is one page of matches.
type Result struct {
	Items []filter.Item
	More  bool
}

// Search matches query case-insensitively against item ids and texts and
// returns the requested 1-based page. Prefix matches sort first, then by text.
func Search(items []filter.Item, query string, page, pageSize int, opts Options) Result {
	pageSize = clampPageSize(pageSize, opts)
	if page < 1 {
		page = 1
	}

	query = strings.TrimSpace(query)
	var matches []matchedItem
	if query == "" {
		if opts.EmptySearchMode != EmptySearchTop {
			return Result{}
		}
		matches = make([]matchedItem, 0, len(items))
		for _, item := range items {
			matches = append(matches, matchedItem{item: item})
		}
	} else {
		q := strings.ToLower(query)
		matches = make([]matchedItem, 0, 32)
		for _, item := range items {
			text := strings.ToLower(item.Text)
			id := strings.ToLower(item.ID)
			if !strings.Contains(text, q) && !strings.Contains(id, q) {
				continue
			}
			matches = append(matches, matchedItem{
				item:     item,
				isPrefix: strings.HasPrefix(text, q) || strings.HasPrefix(id, q),
			})
		}
		sort.SliceStable(matches, func(i, j int) bool {
			if matches[i].isPrefix != matches[j].isPrefix {
				return matches[i].isPrefix
			}
			return matches[i].item.Text < matches[j].item.Text
		})
	}

	if page > len(matches)/pageSize+1 {
		return Result{}
	}
	start := (page - 1) * pageSize
	if start >= len(matches) {
		return Result{}
	}
	end := start + pageSize
	if end > len(matches) {
		end = len(matches)
	}

	out := make([]filter.Item, 0, end-start)
	for _, m := range matches[start:end] {
		out = append(out, filter.Item{ID: m.item.ID, Text: m.item.Text})
	}
	return Result{Items: out, More: end < len(matches)}
}

type matchedItem struct {
	item     filter.Item
	isPrefix bool
}
