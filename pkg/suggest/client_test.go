package suggest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-navfilter/pkg/filter"
)

func TestClient_UsersRequestShape(t *testing.T) {
	var got url.Values
	var path, accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		got = r.URL.Query()
		accept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":"1","text":"Alice"}],"more":false}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithEndpoint(UsersEndpoint()))
	page, err := c.Fetch(context.Background(), "ab", 1)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if path != "/api/users/search" {
		t.Fatalf("unexpected path %q", path)
	}
	want := url.Values{"f": {"s2"}, "s": {"ab"}, "p": {"1"}, "ps": {"100"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("query mismatch (-want +got):\n%s", diff)
	}
	if accept != "application/json" {
		t.Fatalf("unexpected accept header %q", accept)
	}
	if diff := cmp.Diff(Page{Items: []filter.Item{{ID: "1", Text: "Alice"}}, More: false}, page); diff != "" {
		t.Fatalf("page mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_ResourcesRequestShape(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sonar/api/resources/search" {
			http.NotFound(w, r)
			return
		}
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"results":[],"more":true}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL+"/sonar/"), WithEndpoint(ResourcesEndpoint()))
	page, err := c.Fetch(context.Background(), "core", 3)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	want := url.Values{
		"f": {"s2"}, "q": {"TRK"}, "display_key": {"true"},
		"s": {"core"}, "p": {"3"}, "ps": {"100"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("query mismatch (-want +got):\n%s", diff)
	}
	if !page.More || len(page.Items) != 0 {
		t.Fatalf("unexpected page %#v", page)
	}
}

func TestClient_StatusErrorIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(WithBaseURL(srv.URL)).Fetch(context.Background(), "ab", 1)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.StatusCode() != http.StatusBadGateway {
		t.Fatalf("unexpected status %d", netErr.StatusCode())
	}
}

func TestClient_TransportErrorIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	_, err := NewClient(WithBaseURL(base)).Fetch(context.Background(), "ab", 1)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.StatusCode() != 0 || netErr.Unwrap() == nil {
		t.Fatalf("expected wrapped transport error, got %#v", netErr)
	}
}

func TestClient_MalformedEnvelopeIsProtocolError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	_, err := NewClient(WithBaseURL(srv.URL)).Fetch(context.Background(), "ab", 1)
	var protoErr *ProtocolError
	if !errors.As(err, &protoErr) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
	if !strings.Contains(protoErr.Error(), "missing more") {
		t.Fatalf("unexpected reason: %v", protoErr)
	}
}

func TestClient_CustomHeaderAndPageSize(t *testing.T) {
	var auth, ps string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		ps = r.URL.Query().Get("ps")
		_, _ = w.Write([]byte(`{"results":[],"more":false}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithHeader("Authorization", "Bearer t"), WithPageSize(25))
	if _, err := c.Fetch(context.Background(), "ab", 0); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if auth != "Bearer t" || ps != "25" {
		t.Fatalf("unexpected request: auth=%q ps=%q", auth, ps)
	}
	if NewSource(c).State().PageSize != 25 {
		t.Fatalf("expected source to report client page size")
	}
}
