package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/goliatone/go-navfilter/pkg/filter"
	"github.com/goliatone/go-navfilter/pkg/navigator"
	"github.com/goliatone/go-navfilter/pkg/panel"
)

type action string

const (
	actionSearch   action = "Search"
	actionSelect   action = "Select"
	actionUnselect action = "Unselect"
	actionLoadMore action = "Load more"
	actionClear    action = "Clear query"
	actionDone     action = "Done"
)

// Result is the outcome of a session.
type Result struct {
	Filter   string   `json:"filter"`
	Property string   `json:"property"`
	Value    []string `json:"value"`
	Summary  string   `json:"summary"`
	Default  bool     `json:"default"`
}

// Session drives one filter panel from the terminal: it prints the panel
// after every change and offers search, select, unselect and load-more
// actions until the user is done.
type Session struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	out          io.Writer
	logger       *slog.Logger
	pageSize     int
}

// New constructs a session with defaults (survey driver, JSON output).
func New(options ...Option) *Session {
	s := &Session{
		outputFormat: OutputFormatJSON,
		theme:        DefaultTheme(),
		out:          os.Stdout,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		pageSize:     15,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	return s
}

// ContentType reports the serialization format used by Run.
func (s *Session) ContentType() string {
	switch s.outputFormat {
	case OutputFormatQuery:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Run picks values for f and serializes the result.
func (s *Session) Run(ctx context.Context, f *navigator.Filter) ([]byte, error) {
	res, err := s.Pick(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.serialize(res)
}

// Pick runs the interactive loop for f and returns its final value.
func (s *Session) Pick(ctx context.Context, f *navigator.Filter) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("tui: context is required")
	}
	if f == nil || f.Controller == nil {
		return Result{}, ErrNoFilter
	}

	loop := panel.NewLoop(8)
	defer loop.Close()

	var current panel.View
	p := f.NewPanel(panel.RendererFunc(func(v panel.View) { current = v }), loop,
		panel.WithName(f.Definition.DisplayLabel()),
		panel.WithContext(ctx),
		panel.WithLogger(s.logger),
	)
	p.Open()

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := s.driver.Info(ctx, FormatView(current, s.theme)); err != nil {
			return Result{}, err
		}

		actions := availableActions(current, p.Remote())
		names := make([]string, len(actions))
		for i, a := range actions {
			names[i] = string(a)
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:  "Action",
			Options:  names,
			PageSize: s.pageSize,
		})
		if err != nil {
			return Result{}, err
		}
		if idx < 0 || idx >= len(actions) {
			_ = s.driver.Info(ctx, "Invalid action")
			continue
		}

		switch actions[idx] {
		case actionSearch:
			err = s.search(ctx, p, current)
		case actionSelect:
			err = s.move(ctx, p, "Select", current.Choices, filter.ListSelection)
		case actionUnselect:
			err = s.move(ctx, p, "Unselect", current.Selection, filter.ListChoices)
		case actionLoadMore:
			err = s.dispatch(ctx, p, panel.Event{Name: panel.EventLoadMoreRequested})
		case actionClear:
			err = s.dispatch(ctx, p, panel.Event{Name: panel.EventQueryChanged, Text: ""})
		case actionDone:
			// Back to the unfiltered seed so the result reflects the whole list.
			if current.Query != "" {
				if err := s.dispatch(ctx, p, panel.Event{Name: panel.EventQueryChanged}); err != nil {
					return Result{}, err
				}
			}
			return resultFor(f), nil
		}
		if err != nil {
			return Result{}, err
		}
	}
}

func availableActions(v panel.View, remote bool) []action {
	actions := []action{actionSearch}
	if len(v.Choices) > 0 {
		actions = append(actions, actionSelect)
	}
	if len(v.Selection) > 0 {
		actions = append(actions, actionUnselect)
	}
	if remote && v.HasMore {
		actions = append(actions, actionLoadMore)
	}
	if v.Query != "" {
		actions = append(actions, actionClear)
	}
	return append(actions, actionDone)
}

func (s *Session) search(ctx context.Context, p *panel.Panel, v panel.View) error {
	help := fmt.Sprintf("At least %d characters", panel.MinQueryLength)
	if !p.Remote() {
		help += "; matches are ranked locally"
	}
	query, err := s.driver.Input(ctx, InputConfig{
		Message: "Query",
		Default: v.Query,
		Help:    help,
	})
	if err != nil {
		return err
	}
	return s.dispatch(ctx, p, panel.Event{Name: panel.EventQueryChanged, Text: strings.TrimSpace(query)})
}

func (s *Session) move(ctx context.Context, p *panel.Panel, message string, rows []panel.Row, target filter.List) error {
	if len(rows) == 0 {
		return nil
	}
	indices, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  message,
		Options:  rowLabels(rows),
		PageSize: s.pageSize,
	})
	if err != nil {
		return err
	}
	// Collect ids first; each toggle rewrites the rows.
	ids := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(rows) {
			ids = append(ids, rows[idx].ID)
		}
	}
	for _, id := range ids {
		if err := p.Dispatch(panel.Event{Name: panel.EventCheckboxToggled, ID: id, Target: target}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) dispatch(ctx context.Context, p *panel.Panel, ev panel.Event) error {
	if err := p.Dispatch(ev); err != nil {
		return err
	}
	return p.Wait(ctx)
}

// rowLabels returns one label per row, suffixing the id when two rows share
// the same text so answers map back unambiguously.
func rowLabels(rows []panel.Row) []string {
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Text]++
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Text
		if counts[row.Text] > 1 {
			out[i] = fmt.Sprintf("%s (%s)", row.Text, row.ID)
		}
	}
	return out
}

func resultFor(f *navigator.Filter) Result {
	value := f.Controller.CurrentValue()
	if value == nil {
		value = []string{}
	}
	return Result{
		Filter:   f.Definition.Name,
		Property: f.Definition.QueryProperty(),
		Value:    value,
		Summary:  f.Controller.RenderSummary(),
		Default:  f.Controller.IsDefault(),
	}
}

func (s *Session) serialize(res Result) ([]byte, error) {
	switch s.outputFormat {
	case OutputFormatQuery:
		values := url.Values{}
		if !res.Default {
			values.Set(res.Property, strings.Join(res.Value, ","))
		}
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		return []byte(fmt.Sprintf("%s: %s\n", res.Filter, res.Summary)), nil
	default:
		return json.Marshal(res)
	}
}
