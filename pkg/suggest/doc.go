// Package suggest fetches pages of filter suggestions from a remote search
// endpoint.
//
// Client speaks the `{results: [{id, text}], more: bool}` envelope over
// net/http with a fixed page size sent on every request. Source layers the
// paging state on top of any Fetcher: Search starts over at page 1, NextPage
// continues the last query while the endpoint reports more results. Each call
// takes a ticket; completions overtaken by a newer call fail with ErrStale.
package suggest
