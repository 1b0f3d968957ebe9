package panel

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/goliatone/go-navfilter/pkg/filter"
)

type rankedItem struct {
	item     filter.Item
	isPrefix bool
	distance int
	order    int
}

// rankLocal keeps the items whose text or id contains query, prefix matches
// first, then the closest by edit distance, then in their original order.
func rankLocal(items []filter.Item, query string) []filter.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]filter.Item(nil), items...)
	}

	matches := make([]rankedItem, 0, len(items))
	for i, item := range items {
		text := strings.ToLower(item.Label())
		id := strings.ToLower(item.ID)
		if !strings.Contains(text, q) && !strings.Contains(id, q) {
			continue
		}
		matches = append(matches, rankedItem{
			item:     item,
			isPrefix: strings.HasPrefix(text, q) || strings.HasPrefix(id, q),
			distance: levenshtein.ComputeDistance(q, text),
			order:    i,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].order < matches[j].order
	})

	out := make([]filter.Item, len(matches))
	for i, m := range matches {
		out[i] = m.item
	}
	return out
}
