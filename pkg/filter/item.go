package filter

import "strings"

// Item is a single selectable entry. ID is its identity within a set.
type Item struct {
	ID    string `json:"id" yaml:"id"`
	Text  string `json:"text" yaml:"text"`
	Index int    `json:"index,omitempty" yaml:"index,omitempty"`
}

// Label returns Text, falling back to ID when the text is blank.
func (i Item) Label() string {
	if strings.TrimSpace(i.Text) == "" {
		return i.ID
	}
	return i.Text
}

// List names one of the two sets a controller owns.
type List string

const (
	ListChoices   List = "choices"
	ListSelection List = "selection"
)

// ItemSet is an ordered collection of items without duplicate ids.
// The zero value is ready to use.
type ItemSet struct {
	items []Item
	pos   map[string]int
}

// NewItemSet builds a set from items, keeping the first occurrence of each id.
func NewItemSet(items []Item) *ItemSet {
	s := &ItemSet{}
	s.Reset(items)
	return s
}

func (s *ItemSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns a copy of the items in order.
func (s *ItemSet) Items() []Item {
	if s == nil || len(s.items) == 0 {
		return nil
	}
	return append([]Item(nil), s.items...)
}

// IDs returns the item ids in order.
func (s *ItemSet) IDs() []string {
	if s == nil || len(s.items) == 0 {
		return nil
	}
	out := make([]string, len(s.items))
	for i, item := range s.items {
		out[i] = item.ID
	}
	return out
}

func (s *ItemSet) Contains(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.pos[id]
	return ok
}

func (s *ItemSet) Get(id string) (Item, bool) {
	if s == nil {
		return Item{}, false
	}
	idx, ok := s.pos[id]
	if !ok {
		return Item{}, false
	}
	return s.items[idx], true
}

// Append adds item at the end. It reports false when the id is empty or
// already present.
func (s *ItemSet) Append(item Item) bool {
	if item.ID == "" || s.Contains(item.ID) {
		return false
	}
	if s.pos == nil {
		s.pos = make(map[string]int)
	}
	s.pos[item.ID] = len(s.items)
	s.items = append(s.items, item)
	return true
}

// Remove deletes the item with id and returns it.
func (s *ItemSet) Remove(id string) (Item, bool) {
	if s == nil {
		return Item{}, false
	}
	idx, ok := s.pos[id]
	if !ok {
		return Item{}, false
	}
	item := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	delete(s.pos, id)
	for i := idx; i < len(s.items); i++ {
		s.pos[s.items[i].ID] = i
	}
	return item, true
}

// Reset replaces the contents with items, dropping empty and duplicate ids.
func (s *ItemSet) Reset(items []Item) {
	s.items = make([]Item, 0, len(items))
	s.pos = make(map[string]int, len(items))
	for _, item := range items {
		s.Append(item)
	}
}
