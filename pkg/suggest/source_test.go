package suggest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/goliatone/go-navfilter/pkg/filter"
)

type call struct {
	query string
	page  int
}

type recordingFetcher struct {
	mu    sync.Mutex
	calls []call
	pages map[int]Page
	err   error
}

func (f *recordingFetcher) Fetch(_ context.Context, query string, page int) (Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{query: query, page: page})
	if f.err != nil {
		return Page{}, f.err
	}
	return f.pages[page], nil
}

func TestSource_SearchResetsState(t *testing.T) {
	f := &recordingFetcher{pages: map[int]Page{
		1: {Items: []filter.Item{{ID: "1", Text: "Alice"}}, More: true},
		2: {Items: []filter.Item{{ID: "2", Text: "Bob"}}, More: false},
	}}
	s := NewSource(f)

	if _, err := s.Search(context.Background(), "al"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if _, ok, err := s.NextPage(context.Background()); !ok || err != nil {
		t.Fatalf("next page: ok=%v err=%v", ok, err)
	}
	st := s.State()
	if st.Page != 2 || st.HasMore || st.LastQuery != "al" || st.PageSize != DefaultPageSize {
		t.Fatalf("unexpected state %#v", st)
	}

	f.pages[1] = Page{More: true}
	if _, err := s.Search(context.Background(), "bo"); err != nil {
		t.Fatalf("search: %v", err)
	}
	st = s.State()
	if st.Page != 1 || !st.HasMore || st.LastQuery != "bo" {
		t.Fatalf("expected reset state, got %#v", st)
	}
	last := f.calls[len(f.calls)-1]
	if last != (call{query: "bo", page: 1}) {
		t.Fatalf("unexpected last call %#v", last)
	}
}

func TestSource_NextPageWithoutMoreIssuesNoRequest(t *testing.T) {
	f := &recordingFetcher{pages: map[int]Page{1: {More: false}}}
	s := NewSource(f)

	if _, ok, err := s.NextPage(context.Background()); ok || err != nil {
		t.Fatalf("expected no-op before search, got ok=%v err=%v", ok, err)
	}
	if _, err := s.Search(context.Background(), "ab"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if _, ok, _ := s.NextPage(context.Background()); ok {
		t.Fatalf("expected no-op when more=false")
	}
	if len(f.calls) != 1 {
		t.Fatalf("expected a single request, got %#v", f.calls)
	}
}

func TestSource_FailureKeepsState(t *testing.T) {
	f := &recordingFetcher{pages: map[int]Page{1: {More: true}}}
	s := NewSource(f)
	if _, err := s.Search(context.Background(), "ab"); err != nil {
		t.Fatalf("search: %v", err)
	}

	boom := &NetworkError{URL: "x", Code: 500}
	f.err = boom
	if _, ok, err := s.NextPage(context.Background()); !ok || !errors.Is(err, boom) {
		t.Fatalf("expected network error, got ok=%v err=%v", ok, err)
	}
	if st := s.State(); st.Page != 1 || !st.HasMore {
		t.Fatalf("failed fetch should not advance, got %#v", st)
	}
	if _, err := s.Search(context.Background(), "cd"); !errors.Is(err, boom) {
		t.Fatalf("expected network error, got %v", err)
	}
	if st := s.State(); st.LastQuery != "ab" {
		t.Fatalf("failed search should not reset state, got %#v", st)
	}
}

func TestSource_StaleCompletionIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	f := FetcherFunc(func(ctx context.Context, query string, page int) (Page, error) {
		if query == "slow" {
			close(started)
			<-release
			return Page{Items: []filter.Item{{ID: "old"}}, More: true}, nil
		}
		return Page{Items: []filter.Item{{ID: "new"}}}, nil
	})
	s := NewSource(f)

	done := make(chan error, 1)
	go func() {
		_, err := s.Search(context.Background(), "slow")
		done <- err
	}()
	<-started

	page, err := s.Search(context.Background(), "fast")
	if err != nil || len(page.Items) != 1 || page.Items[0].ID != "new" {
		t.Fatalf("unexpected fast result: %#v %v", page, err)
	}
	close(release)

	if err := <-done; !IsStale(err) {
		t.Fatalf("expected stale error, got %v", err)
	}
	if st := s.State(); st.LastQuery != "fast" || st.HasMore {
		t.Fatalf("stale completion leaked into state: %#v", st)
	}
}

func TestSource_ResetMakesNextPageNoop(t *testing.T) {
	f := &recordingFetcher{pages: map[int]Page{1: {More: true}}}
	s := NewSource(f)
	if _, err := s.Search(context.Background(), "ab"); err != nil {
		t.Fatalf("search: %v", err)
	}
	s.Reset()
	if _, ok, _ := s.NextPage(context.Background()); ok {
		t.Fatalf("expected no-op after reset")
	}
}
