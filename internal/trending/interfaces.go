package trending

import (
	"context"

	"github.com/ytget/feed-client/internal/model"
)

// Fetcher retrieves the current list from the remote service.
type Fetcher interface {
	Fetch(ctx context.Context, limit int, platform string) ([]model.TrendingTopic, error)
}

// Cache persists the last successful list per platform.
type Cache interface {
	SaveTrending(ctx context.Context, platform string, topics []model.TrendingTopic) error
	LoadTrending(ctx context.Context, platform string) ([]model.TrendingTopic, error)
}
