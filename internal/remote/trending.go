package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/logging"
	"github.com/ytget/feed-client/internal/model"
)

// Trending query parameters and item extensions
const (
	ParamLimit    = "limit"
	ParamPlatform = "platform"
	HeatElement   = "heat"
	DefaultLimit  = 50
	TrendingUA    = "feed-client/1.0"
)

// TrendingClient fetches the hot-search list published as an RSS feed
type TrendingClient struct {
	feedURL string
	parser  *gofeed.Parser
	now     func() time.Time
	logger  *zap.Logger
}

// NewTrendingClient creates a client for the feed at feedURL
func NewTrendingClient(feedURL string, timeout time.Duration, logger *zap.Logger) *TrendingClient {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = TrendingUA
	return &TrendingClient{
		feedURL: feedURL,
		parser:  parser,
		now:     time.Now,
		logger:  logging.OrNop(logger).Named("trending"),
	}
}

// Fetch returns up to limit topics for platform, ranked as published
func (c *TrendingClient) Fetch(ctx context.Context, limit int, platform string) ([]model.TrendingTopic, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	u, err := url.Parse(c.feedURL)
	if err != nil {
		return nil, fmt.Errorf("parse trending url: %w", err)
	}
	q := u.Query()
	q.Set(ParamLimit, strconv.Itoa(limit))
	if platform != "" {
		q.Set(ParamPlatform, platform)
	}
	u.RawQuery = q.Encode()

	feed, err := c.parser.ParseURLWithContext(u.String(), ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch trending: %w", err)
	}

	fetchedAt := c.now()
	topics := make([]model.TrendingTopic, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(topics) >= limit {
			break
		}
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		topic := model.TrendingTopic{
			Rank:      len(topics) + 1,
			Title:     title,
			URL:       item.Link,
			FetchedAt: fetchedAt,
		}
		if raw, ok := item.Custom[HeatElement]; ok {
			if heat, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
				topic.Heat = heat
			}
		}
		if len(item.Categories) > 0 {
			topic.Tag = item.Categories[0]
		}
		topics = append(topics, topic)
	}

	c.logger.Debug("trending fetched", zap.Int("topics", len(topics)), zap.String("platform", platform))
	return topics, nil
}
