package navigator

import (
	"net/url"
	"strings"
)

// Summary is the one-line state of a filter in the active filters bar.
type Summary struct {
	Name    string
	Label   string
	Text    string
	Default bool
}

// Aggregator collects the filters of a navigator and serialises their values
// into the overall search query.
type Aggregator struct {
	filters []*Filter
}

func NewAggregator(filters ...*Filter) *Aggregator {
	a := &Aggregator{}
	for _, f := range filters {
		a.Add(f)
	}
	return a
}

func (a *Aggregator) Add(f *Filter) {
	if f == nil {
		return
	}
	a.filters = append(a.filters, f)
}

// Filters returns the filters in registration order.
func (a *Aggregator) Filters() []*Filter {
	return append([]*Filter(nil), a.filters...)
}

// Lookup finds a filter by name.
func (a *Aggregator) Lookup(name string) (*Filter, bool) {
	for _, f := range a.filters {
		if f.Definition.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Summaries renders every filter's summary.
func (a *Aggregator) Summaries() []Summary {
	out := make([]Summary, 0, len(a.filters))
	for _, f := range a.filters {
		out = append(out, Summary{
			Name:    f.Definition.Name,
			Label:   f.Definition.DisplayLabel(),
			Text:    f.Controller.RenderSummary(),
			Default: f.Controller.IsDefault(),
		})
	}
	return out
}

// Query serialises the non-default filters as property=comma-joined ids.
// Ids are joined unescaped, so an id that contains a comma does not survive
// a round trip through Restore; it comes back split into its parts.
func (a *Aggregator) Query() url.Values {
	values := url.Values{}
	for _, f := range a.filters {
		if f.Controller.IsDefault() {
			continue
		}
		values.Set(f.Definition.QueryProperty(), strings.Join(f.Controller.CurrentValue(), ","))
	}
	return values
}

// Restore seeds each filter from its property in values, splitting each
// value on commas. Blank parts are dropped.
func (a *Aggregator) Restore(values url.Values) {
	for _, f := range a.filters {
		raw := values.Get(f.Definition.QueryProperty())
		if strings.TrimSpace(raw) == "" {
			continue
		}
		f.Restore(strings.Split(raw, ","))
	}
}
