package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchVideos(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != VideoFeedPath {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":200,"data":[
			{"id":"1","title":"first","author":"a","play_url":"https://v/1.mp4","cover_url":"https://c/1.jpg","likes":3},
			{"id":"2","title":"second","author":"b","play_url":"https://v/2.mp4"}]}`))
	}))
	defer srv.Close()

	c := NewVideoClient(srv.URL+"/", time.Second, nil)
	videos, err := c.FetchVideos(context.Background(), 20, 2)
	if err != nil {
		t.Fatalf("FetchVideos() error = %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("len = %d, want 2", len(videos))
	}
	if videos[0].ID != "1" || videos[0].Likes != 3 || videos[0].CoverURL != "https://c/1.jpg" {
		t.Errorf("videos[0] = %+v", videos[0])
	}
	if gotQuery != "count=2&flag=1&offset=20" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestFetchPostsMapsVideos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":0,"data":[{"id":"7","title":"clip","author":"x","play_url":"https://v/7.mp4","cover_url":"https://c/7.jpg"}]}`))
	}))
	defer srv.Close()

	posts, err := NewVideoClient(srv.URL, 0, nil).FetchPosts(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("FetchPosts() error = %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("len = %d, want 1", len(posts))
	}
	p := posts[0]
	if p.ID != "video_7" || p.Content != "clip" || !p.HasVideo() {
		t.Errorf("post = %+v", p)
	}
}

func TestFetchVideosErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		api    bool
	}{
		{"server error", http.StatusInternalServerError, `oops`, true},
		{"error code", http.StatusOK, `{"code":500,"message":"busy"}`, true},
		{"bad json", http.StatusOK, `{"code":`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewVideoClient(srv.URL, time.Second, nil).FetchVideos(context.Background(), 0, 5)
			if err == nil {
				t.Fatal("expected error")
			}
			var apiErr *APIError
			if got := errors.As(err, &apiErr); got != tt.api {
				t.Errorf("errors.As(APIError) = %v, want %v (err %v)", got, tt.api, err)
			}
		})
	}
}

func TestFetchVideosCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"data":[]}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewVideoClient(srv.URL, time.Second, nil).FetchVideos(ctx, 0, 5); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
