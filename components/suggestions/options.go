package suggestions

import (
	"net/http"

	"github.com/goliatone/go-navfilter/pkg/filter"
)

type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath       string
	SearchParam     string
	PageParam       string
	PageSizeParam   string
	DefaultPageSize int
	MaxPageSize     int
	EmptySearchMode EmptySearchMode
	Guard           GuardFunc

	Items []filter.Item
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       "/api/users/search",
		SearchParam:     "s",
		PageParam:       "p",
		PageSizeParam:   "ps",
		DefaultPageSize: 100,
		MaxPageSize:     500,
		EmptySearchMode: EmptySearchNone,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 100
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = 500
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchNone
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/users/search"
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "s"
	}
	if opts.PageParam == "" {
		opts.PageParam = "p"
	}
	if opts.PageSizeParam == "" {
		opts.PageSizeParam = "ps"
	}
	if opts.Items != nil {
		opts.Items = append([]filter.Item{}, opts.Items...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithPageParams(page, pageSize string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PageParam = page
		o.PageSizeParam = pageSize
	}
}

func WithDefaultPageSize(size int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultPageSize = size
	}
}

func WithMaxPageSize(size int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxPageSize = size
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptySearchMode = mode
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithItems(items []filter.Item) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if items == nil {
			o.Items = nil
			return
		}
		o.Items = append([]filter.Item{}, items...)
	}
}

func clampPageSize(size int, opts Options) int {
	if size <= 0 {
		size = opts.DefaultPageSize
	}
	if opts.MaxPageSize > 0 && size > opts.MaxPageSize {
		return opts.MaxPageSize
	}
	return size
}
