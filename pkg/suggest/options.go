package suggest

import (
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultPageSize is sent as the page size parameter on every request.
const DefaultPageSize = 100

// Options configures a Client.
type Options struct {
	BaseURL    string
	Endpoint   Endpoint
	Params     Params
	PageSize   int
	Timeout    time.Duration
	HTTPClient *http.Client
	Mapper     ItemMapper
	Header     http.Header
	Logger     *slog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Endpoint: UsersEndpoint(),
		Params:   DefaultParams(),
		PageSize: DefaultPageSize,
		Timeout:  10 * time.Second,
		Mapper:   DefaultMapper,
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
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Params.Search == "" {
		opts.Params.Search = "s"
	}
	if opts.Params.Page == "" {
		opts.Params.Page = "p"
	}
	if opts.Params.PageSize == "" {
		opts.Params.PageSize = "ps"
	}
	if opts.Mapper == nil {
		opts.Mapper = DefaultMapper
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Header != nil {
		opts.Header = opts.Header.Clone()
	}
	return opts
}

func WithBaseURL(base string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.BaseURL = base
	}
}

func WithEndpoint(endpoint Endpoint) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Endpoint = endpoint
	}
}

func WithParams(params Params) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Params = params
	}
}

func WithPageSize(size int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PageSize = size
	}
}

// WithTimeout bounds each request when no explicit HTTP client is supplied.
func WithTimeout(timeout time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Timeout = timeout
	}
}

func WithHTTPClient(client *http.Client) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HTTPClient = client
	}
}

// WithMapper overrides how result entries become items.
func WithMapper(mapper ItemMapper) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Mapper = mapper
	}
}

// WithHeader adds a header sent with every request (e.g. authorization).
func WithHeader(key, value string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if o.Header == nil {
			o.Header = http.Header{}
		}
		o.Header.Add(key, value)
	}
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
