// Package suggestions serves the paged suggestion envelope consumed by
// remote filters, for local development and tests.
//
// The handler answers GET and HEAD requests with
// `{"results": [{"id", "text"}], "more": bool}`, reading the query from the
// s parameter and the 1-based page and page size from p and ps. Without
// explicit items it serves the embedded sample user list under
// data/sample_users.txt.
package suggestions
