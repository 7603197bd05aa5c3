package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const hotSearchRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Hot search</title>
<link>https://example.com</link>
<description>hot</description>
<item><title>First topic</title><link>https://example.com/1</link><category>hot</category><heat>98000</heat></item>
<item><title>  </title><link>https://example.com/blank</link></item>
<item><title>Second topic</title><link>https://example.com/2</link><heat>not-a-number</heat></item>
<item><title>Third topic</title><link>https://example.com/3</link><category>new</category><heat>12</heat></item>
</channel>
</rss>`

func TestTrendingFetch(t *testing.T) {
	var gotLimit, gotPlatform string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get(ParamLimit)
		gotPlatform = r.URL.Query().Get(ParamPlatform)
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(hotSearchRSS))
	}))
	defer srv.Close()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewTrendingClient(srv.URL+"/hotsearch.xml", time.Second, nil)
	c.now = func() time.Time { return fixed }

	topics, err := c.Fetch(context.Background(), 50, "weibo")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotLimit != "50" || gotPlatform != "weibo" {
		t.Errorf("query limit=%q platform=%q", gotLimit, gotPlatform)
	}
	if len(topics) != 3 {
		t.Fatalf("len = %d, want 3 (blank titles skipped)", len(topics))
	}
	first := topics[0]
	if first.Rank != 1 || first.Title != "First topic" || first.Heat != 98000 || first.Tag != "hot" {
		t.Errorf("topics[0] = %+v", first)
	}
	if !first.FetchedAt.Equal(fixed) {
		t.Errorf("FetchedAt = %v", first.FetchedAt)
	}
	if topics[1].Rank != 2 || topics[1].Heat != 0 || topics[1].Tag != "" {
		t.Errorf("topics[1] = %+v", topics[1])
	}
	if topics[2].Rank != 3 || topics[2].Tag != "new" {
		t.Errorf("topics[2] = %+v", topics[2])
	}
}

func TestTrendingFetchLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(hotSearchRSS))
	}))
	defer srv.Close()

	topics, err := NewTrendingClient(srv.URL, time.Second, nil).Fetch(context.Background(), 2, "")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("len = %d, want 2", len(topics))
	}
}

func TestTrendingFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewTrendingClient(srv.URL, time.Second, nil).Fetch(context.Background(), 10, ""); err == nil {
		t.Fatal("expected error")
	}
}
