package panel

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/goliatone/go-navfilter/pkg/filter"
	"github.com/goliatone/go-navfilter/pkg/suggest"
)

// Panel drives one filter's query input and checkbox lists. All methods must
// be called from the goroutine running the panel's Loop.
type Panel struct {
	name     string
	ctrl     *filter.Controller
	source   *suggest.Source
	seed     func() []filter.Item
	local    []filter.Item
	renderer Renderer
	loop     *Loop
	ctx      context.Context
	logger   *slog.Logger
	handlers map[string]Handler

	state   State
	query   string
	err     error
	pending int
}

// New builds a panel over ctrl. Without WithSource the panel filters its
// local choices instead of searching.
func New(ctrl *filter.Controller, renderer Renderer, loop *Loop, opts ...Option) *Panel {
	p := &Panel{
		ctrl:     ctrl,
		renderer: renderer,
		loop:     loop,
		ctx:      context.Background(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.renderer == nil {
		p.renderer = RendererFunc(func(View) {})
	}
	if p.loop == nil {
		p.loop = NewLoop(16)
	}
	if p.source == nil && p.local == nil {
		p.local = append(ctrl.Choices(), ctrl.Selection()...)
	}
	if p.seed == nil {
		if p.source == nil {
			p.seed = func() []filter.Item { return p.local }
		} else {
			p.seed = func() []filter.Item { return nil }
		}
	}
	p.logger = p.logger.With(slog.String("filter", p.name))
	p.handlers = p.handlerTable()
	return p
}

func (p *Panel) Controller() *filter.Controller { return p.ctrl }

func (p *Panel) State() State { return p.state }

func (p *Panel) Query() string { return p.query }

// Err returns the error of the last failed fetch, cleared by the next success.
func (p *Panel) Err() error { return p.err }

// Pending reports how many fetches have not completed yet.
func (p *Panel) Pending() int { return p.pending }

// Remote reports whether the panel searches a suggestion source.
func (p *Panel) Remote() bool { return p.source != nil }

// Open resets the choices to the default seed, renders and focuses the query
// input.
func (p *Panel) Open() {
	p.state = Idle
	p.query = ""
	p.err = nil
	if p.source != nil {
		p.source.Reset()
	}
	p.ctrl.ResetChoicesTo(p.seed())
	p.render()
	if f, ok := p.renderer.(Focuser); ok {
		f.FocusQuery()
	}
}

// SetQuery handles a change of the query text.
func (p *Panel) SetQuery(text string) {
	p.query = text
	if utf8.RuneCountInString(text) < MinQueryLength {
		p.state = Idle
		p.err = nil
		if p.source != nil {
			p.source.Reset()
		}
		p.ctrl.ResetChoicesTo(p.seed())
		p.render()
		return
	}

	if p.source == nil {
		p.ctrl.ResetChoicesTo(rankLocal(p.local, text))
		p.state = ResultsShown
		p.err = nil
		p.render()
		return
	}

	p.state = Searching
	p.pending++
	req, ctx := p.source.StartSearch(text), p.ctx
	p.logger.Debug("search issued", slog.String("query", text))
	go func() {
		page, err := req.Do(ctx)
		p.loop.Post(func() { p.completeSearch(text, page, err) })
	}()
	p.render()
}

func (p *Panel) completeSearch(query string, page suggest.Page, err error) {
	p.pending--
	if suggest.IsStale(err) {
		p.logger.Debug("stale search dropped", slog.String("query", query))
		return
	}
	if err != nil {
		p.err = err
		p.logger.Warn("search failed", slog.String("query", query), slog.Any("error", err))
		p.render()
		return
	}
	p.err = nil
	p.ctrl.ResetChoicesTo(page.Items)
	p.state = ResultsShown
	p.render()
}

// LoadMore appends the next page of the current query. It does nothing unless
// results are shown and the source reports more pages.
func (p *Panel) LoadMore() {
	if p.source == nil || p.state != ResultsShown {
		return
	}
	req, ok := p.source.StartNextPage()
	if !ok {
		return
	}
	p.pending++
	ctx := p.ctx
	p.logger.Debug("next page issued", slog.String("query", req.Query()), slog.Int("page", req.Page()))
	go func() {
		page, err := req.Do(ctx)
		p.loop.Post(func() { p.completeNextPage(page, err) })
	}()
}

func (p *Panel) completeNextPage(page suggest.Page, err error) {
	p.pending--
	if suggest.IsStale(err) {
		p.logger.Debug("stale page dropped")
		return
	}
	if err != nil {
		p.err = err
		p.logger.Warn("load more failed", slog.Any("error", err))
		p.render()
		return
	}
	p.err = nil
	added := p.ctrl.AppendChoices(page.Items)
	p.logger.Debug("page appended", slog.Int("items", added))
	p.render()
}

// Toggle moves id into target and re-renders.
func (p *Panel) Toggle(id string, target filter.List) {
	p.ctrl.Toggle(id, target)
	p.render()
}

// View returns the current snapshot.
func (p *Panel) View() View {
	return View{
		Filter:    p.name,
		State:     p.state,
		Query:     p.query,
		Selection: rows(p.ctrl.Selection(), true),
		Choices:   rows(p.ctrl.Choices(), false),
		HasMore:   p.source != nil && p.state == ResultsShown && p.source.HasMore(),
		Summary:   p.ctrl.RenderSummary(),
		Err:       p.err,
	}
}

// Wait steps the loop until no fetch is pending.
func (p *Panel) Wait(ctx context.Context) error {
	for p.pending > 0 {
		if err := p.loop.Step(ctx); err != nil {
			return fmt.Errorf("panel: wait: %w", err)
		}
	}
	return nil
}

func (p *Panel) render() {
	p.renderer.Render(p.View())
}
