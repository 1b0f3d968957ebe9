// Package panel implements the searchable filter panel: the state machine that
// turns query text, checkbox toggles and "load more" requests into controller
// mutations and renders after each change.
//
// A panel is idle until the query has at least MinQueryLength characters.
// Remote panels then search their suggestion source asynchronously; the
// completion is posted back to the panel's Loop, which applies it only if no
// newer request was started in the meantime. Local panels filter a static
// list synchronously.
package panel
