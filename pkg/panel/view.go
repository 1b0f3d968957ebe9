package panel

import "github.com/goliatone/go-navfilter/pkg/filter"

// State is the panel's position in the search cycle.
type State int

const (
	// Idle means no usable query; choices show the default seed.
	Idle State = iota
	// Searching means a fetch for the current query has not succeeded yet.
	Searching
	// ResultsShown means the choices reflect the current query.
	ResultsShown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case ResultsShown:
		return "results"
	default:
		return "unknown"
	}
}

// Row is one checkbox line.
type Row struct {
	ID      string
	Text    string
	Checked bool
}

// View is the snapshot handed to a Renderer after every state change.
type View struct {
	Filter    string
	State     State
	Query     string
	Selection []Row
	Choices   []Row
	HasMore   bool
	Summary   string
	Err       error
}

// Renderer draws the two checkbox lists.
type Renderer interface {
	Render(View)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(View)

func (f RendererFunc) Render(v View) { f(v) }

// Focuser is implemented by renderers that can move input focus to the query
// field when the panel opens.
type Focuser interface {
	FocusQuery()
}

func rows(items []filter.Item, checked bool) []Row {
	if len(items) == 0 {
		return nil
	}
	out := make([]Row, len(items))
	for i, item := range items {
		out[i] = Row{ID: item.ID, Text: item.Label(), Checked: checked}
	}
	return out
}
