package panel

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-navfilter/pkg/filter"
	"github.com/goliatone/go-navfilter/pkg/suggest"
)

// MinQueryLength is the shortest query that triggers a search.
const MinQueryLength = 2

// Option configures a Panel.
type Option func(*Panel)

// WithName labels views and log records.
func WithName(name string) Option {
	return func(p *Panel) {
		p.name = name
	}
}

// WithSource makes the panel remote: queries are searched through source.
func WithSource(source *suggest.Source) Option {
	return func(p *Panel) {
		p.source = source
	}
}

// WithSeed sets the choices shown while the query is too short to search.
func WithSeed(seed func() []filter.Item) Option {
	return func(p *Panel) {
		p.seed = seed
	}
}

// WithLocalChoices sets the static list filtered by local queries. By default
// a local panel uses every item its controller holds at construction.
func WithLocalChoices(items []filter.Item) Option {
	return func(p *Panel) {
		p.local = append([]filter.Item(nil), items...)
	}
}

// WithContext sets the context passed to fetches.
func WithContext(ctx context.Context) Option {
	return func(p *Panel) {
		if ctx != nil {
			p.ctx = ctx
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Panel) {
		if logger != nil {
			p.logger = logger
		}
	}
}
