package suggest

import (
	"context"
	"errors"
	"sync"
)

// PageState tracks where a Source stands in the result pages of its last query.
type PageState struct {
	Page      int
	PageSize  int
	HasMore   bool
	LastQuery string
}

// Source keeps the paging state for a Fetcher. It is safe for concurrent use.
//
// Every request takes a ticket when it is started. A request whose ticket is
// no longer the latest when it completes fails with ErrStale and leaves the
// state untouched, so only the most recently started request can be applied.
type Source struct {
	fetcher  Fetcher
	pageSize int

	mu     sync.Mutex
	state  PageState
	ticket uint64
}

// NewSource wraps fetcher. When fetcher is a *Client its page size is
// reported in the state; otherwise DefaultPageSize is assumed.
func NewSource(fetcher Fetcher) *Source {
	size := DefaultPageSize
	if c, ok := fetcher.(*Client); ok {
		size = c.PageSize()
	}
	return &Source{
		fetcher:  fetcher,
		pageSize: size,
		state:    PageState{Page: 1, PageSize: size},
	}
}

// State returns a copy of the current paging state.
func (s *Source) State() PageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// HasMore reports whether NextPage would issue a request.
func (s *Source) HasMore() bool {
	return s.State().HasMore
}

// Request is a started fetch. Its ticket is taken when it is created, so the
// order of StartSearch/StartNextPage calls decides which request wins, not
// the order in which fetches finish.
type Request struct {
	source *Source
	ticket uint64
	query  string
	page   int
}

func (r *Request) Query() string { return r.query }

func (r *Request) Page() int { return r.page }

// StartSearch begins a search for the first page of query.
func (s *Source) StartSearch(query string) *Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticket++
	return &Request{source: s, ticket: s.ticket, query: query, page: 1}
}

// StartNextPage begins a fetch of the page after the current one for the last
// query. It returns ok=false, and starts nothing, when the endpoint reported
// no more results.
func (s *Source) StartNextPage() (req *Request, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.HasMore {
		return nil, false
	}
	s.ticket++
	return &Request{source: s, ticket: s.ticket, query: s.state.LastQuery, page: s.state.Page + 1}, true
}

// Do performs the fetch and commits the paging state on success. A first
// page resets the state to the request's query; later pages advance it.
func (r *Request) Do(ctx context.Context) (Page, error) {
	s := r.source
	page, err := s.fetcher.Fetch(ctx, r.query, r.page)

	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ticket != s.ticket {
		return Page{}, ErrStale
	}
	if err != nil {
		return Page{}, err
	}
	if r.page == 1 {
		s.state = PageState{Page: 1, PageSize: s.pageSize, HasMore: page.More, LastQuery: r.query}
	} else {
		s.state.Page = r.page
		s.state.HasMore = page.More
	}
	return page, nil
}

// Search fetches the first page of query. The caller replaces its choices
// with the result.
func (s *Source) Search(ctx context.Context, query string) (Page, error) {
	return s.StartSearch(query).Do(ctx)
}

// NextPage fetches the next page of the last query; ok=false means no request
// was issued. The caller appends the result to its choices.
func (s *Source) NextPage(ctx context.Context) (page Page, ok bool, err error) {
	req, ok := s.StartNextPage()
	if !ok {
		return Page{}, false, nil
	}
	page, err = req.Do(ctx)
	return page, true, err
}

// Reset forgets the last query so NextPage becomes a no-op. Requests still in
// flight complete as stale.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticket++
	s.state = PageState{Page: 1, PageSize: s.pageSize}
}

// IsStale reports whether err marks an overtaken request.
func IsStale(err error) bool {
	return errors.Is(err, ErrStale)
}
