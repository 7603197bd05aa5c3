// Package localfeed keeps the posts authored on this device for the lifetime
// of the process and publishes consistent snapshots of them.
package localfeed

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2/data/binding"
	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/config"
	"github.com/ytget/feed-client/internal/logging"
	"github.com/ytget/feed-client/internal/model"
)

// Post formatting constants
const (
	IDPrefix       = "local_"
	TimeTextLayout = "01-02 15:04" // MM-dd HH:mm
)

// AuthorLookup resolves author defaults from the preference store.
// fyne.Preferences satisfies it.
type AuthorLookup interface {
	StringWithFallback(key, fallback string) string
}

// Store is an ordered, newest-first collection of locally authored posts.
// Writers are serialized; readers always see a fully published slice.
type Store struct {
	mu       sync.Mutex
	posts    atomic.Pointer[[]model.Post]
	lastID   int64
	count    binding.Int
	authors  AuthorLookup
	now      func() time.Time
	onChange []func([]model.Post)
	logger   *zap.Logger

	// pubMu serializes deliveries; published is the length last delivered
	pubMu     sync.Mutex
	published int
}

// NewStore creates an empty store. authors may be nil, in which case the
// configured defaults are used.
func NewStore(authors AuthorLookup, logger *zap.Logger) *Store {
	s := &Store{
		count:   binding.NewInt(),
		authors: authors,
		now:     time.Now,
		logger:  logging.OrNop(logger).Named("localfeed"),
	}
	empty := make([]model.Post, 0)
	s.posts.Store(&empty)
	return s
}

// Append adds a new post at the head of the collection and reports success.
// On failure the store is left untouched.
func (s *Store) Append(content string, images []string) (model.Post, bool) {
	s.mu.Lock()

	now := s.now()
	ms := now.UnixMilli()
	// Two posts in the same millisecond must still get distinct ids.
	if ms <= s.lastID {
		ms = s.lastID + 1
	}

	post := model.Post{
		ID:           fmt.Sprintf("%s%d", IDPrefix, ms),
		AuthorName:   s.lookup(config.KeyNickname, config.DefaultNickname),
		AuthorAvatar: s.lookup(config.KeyAvatar, config.DefaultAvatar),
		TimeText:     now.Format(TimeTextLayout),
		CreatedAt:    ms,
		Content:      content,
	}

	media := make([]model.Media, 0, len(images))
	for _, url := range images {
		media = append(media, model.Image{URL: url})
	}
	if err := post.SetMedia(media); err != nil {
		s.mu.Unlock()
		s.logger.Warn("rejecting local post", zap.Error(err))
		return model.Post{}, false
	}

	current := *s.posts.Load()
	next := make([]model.Post, 0, len(current)+1)
	next = append(next, post)
	next = append(next, current...)
	s.posts.Store(&next)
	s.lastID = ms
	s.mu.Unlock()

	s.logger.Debug("local post added", zap.String("id", post.ID), zap.Int("count", len(next)))
	s.publish()
	return post, true
}

// publish hands the newest snapshot to the count binding and listeners.
// Concurrent appends may coalesce into one delivery, but a delivery never
// carries an older snapshot than the one before it.
func (s *Store) publish() {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	latest := *s.posts.Load()
	if len(latest) <= s.published {
		return
	}
	s.published = len(latest)

	if err := s.count.Set(len(latest)); err != nil {
		s.logger.Warn("count binding update failed", zap.Error(err))
	}
	s.mu.Lock()
	listeners := append([]func([]model.Post){}, s.onChange...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(latest)
	}
}

// Snapshot returns a copy of the posts, newest first
func (s *Store) Snapshot() []model.Post {
	current := *s.posts.Load()
	out := make([]model.Post, len(current))
	copy(out, current)
	return out
}

// Count returns the number of posts in the store
func (s *Store) Count() int {
	return len(*s.posts.Load())
}

// CountBinding exposes the post count as observable UI state
func (s *Store) CountBinding() binding.Int {
	return s.count
}

// OnChange registers a callback invoked with every newly published snapshot,
// on the appending goroutine. The slice passed to fn must not be modified, and
// fn must not append to the store.
func (s *Store) OnChange(fn func([]model.Post)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

func (s *Store) lookup(key, fallback string) string {
	if s.authors == nil {
		return fallback
	}
	return s.authors.StringWithFallback(key, fallback)
}
