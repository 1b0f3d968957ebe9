package panel

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-navfilter/pkg/filter"
)

// Event names emitted by a rendering collaborator.
const (
	EventCheckboxToggled   = "checkboxToggled"
	EventQueryChanged      = "queryChanged"
	EventLoadMoreRequested = "loadMoreRequested"
)

// Event is a user intent reported by the renderer. ID and Target are used by
// checkbox toggles (Target is the list the item should move to), Text by
// query changes.
type Event struct {
	Name   string
	ID     string
	Target filter.List
	Text   string
}

// Handler reacts to one event.
type Handler func(Event) error

func (p *Panel) handlerTable() map[string]Handler {
	return map[string]Handler{
		EventCheckboxToggled: func(ev Event) error {
			if ev.Target != filter.ListChoices && ev.Target != filter.ListSelection {
				return fmt.Errorf("panel: toggle %q: unknown target list %q", ev.ID, ev.Target)
			}
			p.Toggle(ev.ID, ev.Target)
			return nil
		},
		EventQueryChanged: func(ev Event) error {
			p.SetQuery(ev.Text)
			return nil
		},
		EventLoadMoreRequested: func(Event) error {
			p.LoadMore()
			return nil
		},
	}
}

// Dispatch routes ev to its handler.
func (p *Panel) Dispatch(ev Event) error {
	h, ok := p.handlers[ev.Name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Name)
	}
	return h(ev)
}

// Events lists the event names the panel handles.
func (p *Panel) Events() []string {
	out := make([]string, 0, len(p.handlers))
	for name := range p.handlers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
