package filter

import "strings"

// DefaultSummary is rendered for a filter sitting at its default value.
const DefaultSummary = "All"

// Variant selects how a controller decides it is at its default value.
type Variant string

const (
	// VariantStatic filters own a fixed choice list. A static filter whose
	// whole list is selected is vacuously at its default.
	VariantStatic Variant = "static"
	// VariantRemote filters are populated by searches; only an empty
	// selection counts as default.
	VariantRemote Variant = "remote"
)

// ChangeFunc receives the filter value after every move.
type ChangeFunc func(value []string)

// Controller owns the choice and selection sets of one filter. It is not safe
// for concurrent use; callers serialise access on their event loop.
type Controller struct {
	variant   Variant
	choices   *ItemSet
	selection *ItemSet
	nextIndex int
	listeners []ChangeFunc
	// seedPos maps static seed ids to their position.
	seedPos   map[string]int
}

// NewStatic builds a controller whose choices are seeded from items. Each
// seeded choice gets its position as Index.
func NewStatic(items []Item) *Controller {
	seeded := make([]Item, 0, len(items))
	pos := make(map[string]int, len(items))
	for i, item := range items {
		if _, dup := pos[item.ID]; dup {
			continue
		}
		item.Index = i
		pos[item.ID] = i
		seeded = append(seeded, item)
	}
	return &Controller{
		variant:   VariantStatic,
		choices:   NewItemSet(seeded),
		selection: NewItemSet(nil),
		seedPos:   pos,
	}
}

// NewRemote builds a controller with empty sets.
func NewRemote() *Controller {
	return &Controller{
		variant:   VariantRemote,
		choices:   NewItemSet(nil),
		selection: NewItemSet(nil),
	}
}

func (c *Controller) Variant() Variant { return c.variant }

// Choices returns the available items in order.
func (c *Controller) Choices() []Item { return c.choices.Items() }

// Selection returns the chosen items in index order.
func (c *Controller) Selection() []Item { return c.selection.Items() }

func (c *Controller) IsSelected(id string) bool { return c.selection.Contains(id) }

// OnChange registers fn to run after every successful move.
func (c *Controller) OnChange(fn ChangeFunc) {
	if fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// MoveToSelection moves id from the choices to the end of the selection. Ids
// that are not currently choices are ignored.
func (c *Controller) MoveToSelection(id string) bool {
	item, ok := c.choices.Remove(id)
	if !ok {
		return false
	}
	c.nextIndex++
	item.Index = c.nextIndex
	c.selection.Append(item)
	c.notify()
	return true
}

// MoveToChoices moves id from the selection to the end of the choices. Ids
// that are not currently selected are ignored. The item gets its seed
// position back as Index, or zero when it has none.
func (c *Controller) MoveToChoices(id string) bool {
	item, ok := c.selection.Remove(id)
	if !ok {
		return false
	}
	item.Index = c.seedPos[id]
	c.choices.Append(item)
	c.notify()
	return true
}

// Toggle applies the move implied by a checkbox change: target is the list
// the item should end up in.
func (c *Controller) Toggle(id string, target List) bool {
	switch target {
	case ListSelection:
		return c.MoveToSelection(id)
	case ListChoices:
		return c.MoveToChoices(id)
	default:
		return false
	}
}

// CurrentValue returns the selected ids in selection order.
func (c *Controller) CurrentValue() []string {
	return c.selection.IDs()
}

// IsDefault reports whether the filter contributes nothing to a query.
func (c *Controller) IsDefault() bool {
	if c.selection.Len() == 0 {
		return true
	}
	if c.variant != VariantStatic {
		return false
	}
	// Measured against the seed, not the current choices, which a local
	// query may have narrowed.
	for id := range c.seedPos {
		if !c.selection.Contains(id) {
			return false
		}
	}
	return true
}

// RenderSummary joins the selected texts, or returns DefaultSummary.
func (c *Controller) RenderSummary() string {
	if c.IsDefault() {
		return DefaultSummary
	}
	items := c.selection.Items()
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Label()
	}
	return strings.Join(texts, ", ")
}

// ResetChoicesTo replaces the choices wholesale. Items already selected are
// left out so the two sets stay disjoint.
func (c *Controller) ResetChoicesTo(items []Item) {
	c.choices.Reset(c.Exclude(items))
}

// AppendChoices adds items to the end of the choices, skipping selected and
// duplicate ids. It returns the number of items added.
func (c *Controller) AppendChoices(items []Item) int {
	added := 0
	for _, item := range c.Exclude(items) {
		if c.choices.Append(item) {
			added++
		}
	}
	return added
}

// Exclude returns items minus those already selected.
func (c *Controller) Exclude(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if c.selection.Contains(item.ID) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Restore seeds the selection from a previously serialised value. Restored
// items are removed from the choices. Listeners are not notified.
func (c *Controller) Restore(items []Item) {
	for _, item := range items {
		if item.ID == "" || c.selection.Contains(item.ID) {
			continue
		}
		if existing, ok := c.choices.Remove(item.ID); ok && strings.TrimSpace(item.Text) == "" {
			item.Text = existing.Text
		}
		c.nextIndex++
		item.Index = c.nextIndex
		c.selection.Append(item)
	}
}

func (c *Controller) notify() {
	if len(c.listeners) == 0 {
		return
	}
	value := c.CurrentValue()
	for _, fn := range c.listeners {
		fn(append([]string(nil), value...))
	}
}
