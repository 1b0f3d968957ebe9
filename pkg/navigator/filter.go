package navigator

import (
	"strings"

	"github.com/goliatone/go-navfilter/pkg/filter"
	"github.com/goliatone/go-navfilter/pkg/panel"
	"github.com/goliatone/go-navfilter/pkg/suggest"
)

// Definition declares one filter of a navigator.
type Definition struct {
	Name     string        `json:"name" yaml:"name"`
	Label    string        `json:"label,omitempty" yaml:"label,omitempty"`
	Property string        `json:"property,omitempty" yaml:"property,omitempty"`
	Kind     string        `json:"kind" yaml:"kind"`
	Choices  []filter.Item `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// DisplayLabel returns Label, falling back to Name.
func (d Definition) DisplayLabel() string {
	if label := strings.TrimSpace(d.Label); label != "" {
		return label
	}
	return d.Name
}

// QueryProperty returns the query parameter the filter serialises into.
func (d Definition) QueryProperty() string {
	if prop := strings.TrimSpace(d.Property); prop != "" {
		return prop
	}
	return d.Name
}

// Filter is a built filter: its controller, the optional suggestion source of
// remote kinds and the seed shown while no query is typed.
type Filter struct {
	Definition Definition
	Controller *filter.Controller
	Source     *suggest.Source
	Seed       func() []filter.Item
}

// Remote reports whether the filter searches a suggestion source.
func (f *Filter) Remote() bool { return f.Source != nil }

// NewPanel builds a panel for the filter. Each call returns an independent
// panel sharing the filter's controller.
func (f *Filter) NewPanel(renderer panel.Renderer, loop *panel.Loop, opts ...panel.Option) *panel.Panel {
	base := []panel.Option{panel.WithName(f.Definition.Name)}
	if f.Source != nil {
		base = append(base, panel.WithSource(f.Source))
	} else {
		base = append(base, panel.WithLocalChoices(f.Definition.Choices))
	}
	if f.Seed != nil {
		base = append(base, panel.WithSeed(f.Seed))
	}
	return panel.New(f.Controller, renderer, loop, append(base, opts...)...)
}

// Restore seeds the selection with ids, taking texts from the definition's
// choices or the seed when they are known.
func (f *Filter) Restore(ids []string) {
	known := make(map[string]string)
	for _, item := range f.Definition.Choices {
		known[item.ID] = item.Text
	}
	if f.Seed != nil {
		for _, item := range f.Seed() {
			known[item.ID] = item.Text
		}
	}
	items := make([]filter.Item, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		items = append(items, filter.Item{ID: id, Text: known[id]})
	}
	f.Controller.Restore(items)
}
