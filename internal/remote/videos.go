package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/logging"
	"github.com/ytget/feed-client/internal/model"
)

// Video feed endpoint and parameters
const (
	VideoFeedPath    = "/api/videos"
	ParamOffset      = "offset"
	ParamCount       = "count"
	ParamFlag        = "flag"
	DefaultVideoFlag = 1
	DefaultTimeout   = 15 * time.Second
)

// VideoResponse is the envelope returned by the video feed
type VideoResponse struct {
	Code    int                `json:"code"`
	Message string             `json:"message,omitempty"`
	Data    []model.ShortVideo `json:"data"`
}

// APIError is a non-success answer from a content service
type APIError struct {
	Status int
	Code   int
	Msg    string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("api error (status %d, code %d): %s", e.Status, e.Code, e.Msg)
	}
	return fmt.Sprintf("api error (status %d, code %d)", e.Status, e.Code)
}

// VideoClient fetches the short-video feed
type VideoClient struct {
	baseURL    string
	flag       int
	httpClient *http.Client
	logger     *zap.Logger
}

// NewVideoClient creates a client for the feed at baseURL
func NewVideoClient(baseURL string, timeout time.Duration, logger *zap.Logger) *VideoClient {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &VideoClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		flag:       DefaultVideoFlag,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.OrNop(logger).Named("videos"),
	}
}

// FetchVideos returns count videos starting at offset
func (c *VideoClient) FetchVideos(ctx context.Context, offset, count int) ([]model.ShortVideo, error) {
	q := url.Values{}
	q.Set(ParamOffset, strconv.Itoa(offset))
	q.Set(ParamCount, strconv.Itoa(count))
	q.Set(ParamFlag, strconv.Itoa(c.flag))
	endpoint := c.baseURL + VideoFeedPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch videos: %w", err)
	}
	defer resp.Body.Close()

	var body VideoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{Status: resp.StatusCode}
		}
		return nil, fmt.Errorf("decode videos: %w", err)
	}
	if resp.StatusCode != http.StatusOK || (body.Code != 0 && body.Code != http.StatusOK) {
		return nil, &APIError{Status: resp.StatusCode, Code: body.Code, Msg: body.Message}
	}

	c.logger.Debug("videos fetched",
		zap.Int("offset", offset),
		zap.Int("count", len(body.Data)),
		zap.Duration("took", time.Since(start)))
	return body.Data, nil
}

// FetchPosts fetches videos and maps them to feed posts; it matches
// paging.FetchFunc
func (c *VideoClient) FetchPosts(ctx context.Context, offset, count int) ([]model.Post, error) {
	videos, err := c.FetchVideos(ctx, offset, count)
	if err != nil {
		return nil, err
	}
	posts := make([]model.Post, 0, len(videos))
	for _, v := range videos {
		posts = append(posts, v.ToPost())
	}
	return posts, nil
}
