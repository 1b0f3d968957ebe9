package suggestions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-navfilter/pkg/filter"
)

type handlerResponse struct {
	Results []resultItem `json:"results"`
	More    *bool        `json:"more"`
}

func people() []filter.Item {
	return []filter.Item{
		{ID: "alice", Text: "Alice Liddell"},
		{ID: "alan", Text: "Alan Turing"},
		{ID: "bob", Text: "Bob Ross"},
		{ID: "sal", Text: "Sally Ride"},
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) handlerResponse {
	t.Helper()
	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Results == nil || payload.More == nil {
		t.Fatalf("envelope missing fields: %#v", payload)
	}
	return payload
}

func TestHandler_EmptyQueryReturnsEmptyResults(t *testing.T) {
	h := Handler(WithItems(people()))

	req := httptest.NewRequest(http.MethodGet, "/api/users/search?f=s2", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	payload := decode(t, rec)
	if len(payload.Results) != 0 || *payload.More {
		t.Fatalf("expected empty page, got %#v", payload)
	}
}

func TestHandler_SearchPagesResults(t *testing.T) {
	h := Handler(WithItems(people()))

	req := httptest.NewRequest(http.MethodGet, "/api/users/search?s=al&p=1&ps=2", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	payload := decode(t, rec)

	want := []resultItem{{ID: "alan", Text: "Alan Turing"}, {ID: "alice", Text: "Alice Liddell"}}
	if diff := cmp.Diff(want, payload.Results); diff != "" {
		t.Fatalf("page 1 mismatch (-want +got):\n%s", diff)
	}
	if !*payload.More {
		t.Fatalf("expected more results after page 1")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/users/search?s=al&p=2&ps=2", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	payload = decode(t, rec)
	if diff := cmp.Diff([]resultItem{{ID: "sal", Text: "Sally Ride"}}, payload.Results); diff != "" {
		t.Fatalf("page 2 mismatch (-want +got):\n%s", diff)
	}
	if *payload.More {
		t.Fatalf("expected last page")
	}
}

func TestHandler_PageSizeClamped(t *testing.T) {
	h := Handler(WithItems(people()), WithMaxPageSize(1), WithEmptySearchMode(EmptySearchTop))

	req := httptest.NewRequest(http.MethodGet, "/api/users/search?ps=100", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	payload := decode(t, rec)
	if len(payload.Results) != 1 || !*payload.More {
		t.Fatalf("expected a single clamped result, got %#v", payload)
	}
}

func TestHandler_HugePageReturnsEmptyEnvelope(t *testing.T) {
	h := Handler(WithItems(people()))

	req := httptest.NewRequest(http.MethodGet, "/api/users/search?s=a&p=184467440737095517&ps=100", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	payload := decode(t, rec)
	if len(payload.Results) != 0 || *payload.More {
		t.Fatalf("expected empty page, got %#v", payload)
	}
}

func TestHandler_GuardRejects(t *testing.T) {
	h := Handler(
		WithItems(people()),
		WithGuard(func(r *http.Request) error {
			return StatusError{Code: http.StatusUnauthorized}
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/users/search?s=al", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := Handler(WithItems(people()))

	req := httptest.NewRequest(http.MethodPost, "/api/users/search?s=al", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}

func TestHandler_DefaultCatalogue(t *testing.T) {
	h := Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/users/search?s=grace", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	payload := decode(t, rec)
	if len(payload.Results) != 1 || payload.Results[0].ID != "grace" {
		t.Fatalf("unexpected payload %#v", payload)
	}
}
