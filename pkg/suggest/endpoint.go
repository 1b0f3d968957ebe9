package suggest

import (
	"net/url"
	"strconv"
	"strings"
)

// Endpoint describes where a suggestion search lives and the fixed parameters
// it expects on top of the query and paging parameters.
type Endpoint struct {
	Path   string
	Params url.Values
}

// UsersEndpoint searches user accounts.
func UsersEndpoint() Endpoint {
	return Endpoint{
		Path:   "/api/users/search",
		Params: url.Values{"f": {"s2"}},
	}
}

// ResourcesEndpoint searches project-like resources and displays their keys.
func ResourcesEndpoint() Endpoint {
	return Endpoint{
		Path: "/api/resources/search",
		Params: url.Values{
			"f":           {"s2"},
			"q":           {"TRK"},
			"display_key": {"true"},
		},
	}
}

// URL resolves the endpoint against baseURL and adds the query and paging
// parameters.
func (e Endpoint) URL(baseURL string, query string, page, pageSize int, p Params) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	path := strings.TrimSpace(e.Path)
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u, err := url.Parse(base + path)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for key, values := range e.Params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	q.Set(p.Search, query)
	q.Set(p.Page, strconv.Itoa(page))
	q.Set(p.PageSize, strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Params names the request parameters carrying the query and paging values.
type Params struct {
	Search   string
	Page     string
	PageSize string
}

// DefaultParams returns the s/p/ps parameter names.
func DefaultParams() Params {
	return Params{Search: "s", Page: "p", PageSize: "ps"}
}
