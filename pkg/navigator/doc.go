// Package navigator assembles filters from definitions and aggregates their
// values into a search query.
//
// The Registry is the explicit list of filter kinds a navigator can build:
// "static" select lists plus the remote "project", "assignee" and "reporter"
// pickers. Additional kinds are added with Register.
package navigator
