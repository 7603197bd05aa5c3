// Package mockapi serves canned content for the remote flows of the client:
// the short-video feed, the remote home posts and the trending RSS.
package mockapi

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/logging"
	"github.com/ytget/feed-client/internal/model"
	"github.com/ytget/feed-client/internal/remote"
)

// Catalogue sizes and limits
const (
	VideoCount     = 120
	PostCount      = 60
	TopicCount     = 50
	MaxPageCount   = 50
	RequestIDField = "X-Request-Id"
)

// Server is the mock content server.
type Server struct {
	router chi.Router
	videos []model.ShortVideo
	posts  []model.Post
	topics []model.TrendingTopic
	logger *zap.Logger
}

// New creates a server with the default catalogue.
func New(logger *zap.Logger) *Server {
	s := &Server{
		videos: Videos(VideoCount),
		posts:  Posts(PostCount),
		topics: Topics(TopicCount),
		logger: logging.OrNop(logger).Named("mockapi"),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/hotsearch.xml", s.handleTrending)

	r.Route("/api", func(r chi.Router) {
		r.Get("/videos", s.handleVideos)
		r.Get("/videos/{videoID}", s.handleVideo)
		r.Get("/posts", s.handlePosts)
	})

	s.router = r
}

// ServeHTTP lets the server be mounted or used with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start serves on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mock api listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// --- Middleware ---

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDField)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDField, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", w.Header().Get(RequestIDField)))
	})
}

// --- Handlers ---

func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request) {
	offset, count, ok := pageParams(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, remote.VideoResponse{Code: http.StatusOK, Data: window(s.videos, offset, count)})
}

func (s *Server) handleVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "videoID")
	for _, v := range s.videos {
		if v.ID == id {
			writeJSON(w, http.StatusOK, v)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, remote.VideoResponse{Code: http.StatusNotFound, Message: "video not found"})
}

func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	offset, count, ok := pageParams(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"code": http.StatusOK,
		"data": window(s.posts, offset, count),
	})
}

type rssDoc struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title    string `xml:"title"`
	Link     string `xml:"link"`
	Category string `xml:"category,omitempty"`
	Heat     int64  `xml:"heat"`
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	limit := len(s.topics)
	if v := r.URL.Query().Get(remote.ParamLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		if n < limit {
			limit = n
		}
	}
	platform := r.URL.Query().Get(remote.ParamPlatform)
	if platform == "" {
		platform = "weibo"
	}

	doc := rssDoc{
		Version: "2.0",
		Channel: rssChannel{
			Title:       "Hot search: " + platform,
			Link:        "https://s.example.com/" + platform,
			Description: "Trending topics on " + platform,
		},
	}
	for _, t := range s.topics[:limit] {
		doc.Channel.Items = append(doc.Channel.Items, rssItem{Title: t.Title, Link: t.URL, Category: t.Tag, Heat: t.Heat})
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(doc); err != nil {
		s.logger.Warn("encode rss", zap.Error(err))
	}
}

// --- Helpers ---

func pageParams(w http.ResponseWriter, r *http.Request) (offset, count int, ok bool) {
	q := r.URL.Query()
	offset, err := strconv.Atoi(q.Get(remote.ParamOffset))
	if err != nil || offset < 0 {
		writeJSON(w, http.StatusBadRequest, remote.VideoResponse{Code: http.StatusBadRequest, Message: "invalid offset"})
		return 0, 0, false
	}
	count, err = strconv.Atoi(q.Get(remote.ParamCount))
	if err != nil || count <= 0 {
		writeJSON(w, http.StatusBadRequest, remote.VideoResponse{Code: http.StatusBadRequest, Message: "invalid count"})
		return 0, 0, false
	}
	if count > MaxPageCount {
		count = MaxPageCount
	}
	return offset, count, true
}

func window[T any](items []T, offset, count int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + count
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
