package trending

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/logging"
	"github.com/ytget/feed-client/internal/model"
)

// ErrRefreshInProgress is returned when a refresh is already running
var ErrRefreshInProgress = errors.New("trending refresh already in progress")

// Source tells where the current list came from
type Source int

const (
	SourceNone Source = iota
	SourceCache
	SourceRemote
)

func (s Source) String() string {
	switch s {
	case SourceCache:
		return "cache"
	case SourceRemote:
		return "remote"
	default:
		return "none"
	}
}

// Update is delivered to the callback after every change
type Update struct {
	Topics    []model.TrendingTopic
	Source    Source
	Refreshed time.Time
	Err       error
}

// Service handles trending list loading
type Service struct {
	fetcher  Fetcher
	cache    Cache
	platform string
	limit    int
	logger   *zap.Logger

	mu       sync.RWMutex
	current  Update
	cancel   context.CancelFunc
	onUpdate func(Update) // callback for UI updates
}

// NewService creates a new trending service; cache may be nil
func NewService(fetcher Fetcher, cache Cache, platform string, limit int, logger *zap.Logger) *Service {
	return &Service{
		fetcher:  fetcher,
		cache:    cache,
		platform: platform,
		limit:    limit,
		logger:   logging.OrNop(logger).Named("trending"),
	}
}

// SetUpdateCallback sets the callback function for list updates
func (s *Service) SetUpdateCallback(callback func(Update)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Current returns the last delivered update
func (s *Service) Current() Update {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// LoadCached publishes the cached list, if any. A remote list that already
// arrived is never replaced by the cache.
func (s *Service) LoadCached(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	topics, err := s.cache.LoadTrending(ctx, s.platform)
	if err != nil {
		return fmt.Errorf("load cached trending: %w", err)
	}
	if len(topics) == 0 {
		return nil
	}

	s.mu.Lock()
	if s.current.Source == SourceRemote {
		s.mu.Unlock()
		return nil
	}
	s.current = Update{Topics: topics, Source: SourceCache, Refreshed: topics[0].FetchedAt}
	u := s.current
	s.mu.Unlock()

	s.notifyUpdate(u)
	return nil
}

// Refresh fetches the list from the remote service and stores it. On failure
// the previous list is kept and the error is attached to the update.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return ErrRefreshInProgress
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancel = nil
		s.mu.Unlock()
	}()

	start := time.Now()
	topics, err := s.fetcher.Fetch(ctx, s.limit, s.platform)
	if err != nil {
		s.mu.Lock()
		s.current.Err = err
		u := s.current
		s.mu.Unlock()
		s.logger.Warn("refresh failed", zap.String("platform", s.platform), zap.Error(err))
		s.notifyUpdate(u)
		return err
	}

	if s.cache != nil {
		if err := s.cache.SaveTrending(ctx, s.platform, topics); err != nil {
			s.logger.Warn("cache save failed", zap.Error(err))
		}
	}

	s.mu.Lock()
	s.current = Update{Topics: topics, Source: SourceRemote, Refreshed: time.Now()}
	u := s.current
	s.mu.Unlock()

	s.logger.Info("refreshed",
		zap.String("platform", s.platform),
		zap.Int("topics", len(topics)),
		zap.Duration("took", time.Since(start)))
	s.notifyUpdate(u)
	return nil
}

// Stop cancels a running refresh
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Service) notifyUpdate(u Update) {
	s.mu.RLock()
	cb := s.onUpdate
	s.mu.RUnlock()
	if cb != nil {
		cb(u)
	}
}
