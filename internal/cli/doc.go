// Package cli implements the navfilter command line: picking filter values
// in the terminal, listing configured filters and serving sample suggestion
// endpoints.
//
// Settings come from flags, NAVFILTER_* environment variables and an
// optional navfilter.yaml, in that order of precedence.
package cli
