// Package filter holds the choice/selection model behind a navigator filter.
//
// A Controller owns two ordered item sets: choices (available items) and the
// selection (chosen items). Items move between them only through the
// Controller, which keeps the sets disjoint and exposes the selection as the
// filter's value.
package filter
