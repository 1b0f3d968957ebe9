package suggest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Fetcher retrieves one page of suggestions for a query. Pages start at 1.
type Fetcher interface {
	Fetch(ctx context.Context, query string, page int) (Page, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, query string, page int) (Page, error)

func (f FetcherFunc) Fetch(ctx context.Context, query string, page int) (Page, error) {
	return f(ctx, query, page)
}

// Client is the HTTP Fetcher for a single search endpoint.
type Client struct {
	opts Options
}

// NewClient constructs a client with default options plus any overrides.
func NewClient(fns ...OptionFn) *Client {
	return &Client{opts: NewOptions(fns...)}
}

// Options returns a copy of the client configuration.
func (c *Client) Options() Options {
	return NewOptions(func(o *Options) { *o = c.opts })
}

// PageSize reports the page size sent with each request.
func (c *Client) PageSize() int { return c.opts.PageSize }

// Fetch requests page for query. Transport failures and non-2xx responses
// are returned as *NetworkError, envelope problems as *ProtocolError.
func (c *Client) Fetch(ctx context.Context, query string, page int) (Page, error) {
	if page < 1 {
		page = 1
	}
	reqURL, err := c.opts.Endpoint.URL(c.opts.BaseURL, query, page, c.opts.PageSize, c.opts.Params)
	if err != nil {
		return Page{}, fmt.Errorf("suggest: build url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Page{}, fmt.Errorf("suggest: request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range c.opts.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	c.opts.Logger.DebugContext(ctx, "suggest fetch", slog.String("url", reqURL), slog.Int("page", page))

	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return Page{}, &NetworkError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Page{}, &NetworkError{URL: reqURL, Code: resp.StatusCode}
	}

	result, err := DecodePage(resp.Body, c.opts.Mapper)
	if err != nil {
		return Page{}, err
	}
	c.opts.Logger.DebugContext(ctx, "suggest page",
		slog.String("url", reqURL),
		slog.Int("items", len(result.Items)),
		slog.Bool("more", result.More),
	)
	return result, nil
}
