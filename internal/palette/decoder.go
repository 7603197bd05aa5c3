package palette

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "golang.org/x/image/webp"
)

// Decoder limits
const (
	DefaultDecodeTimeout = 20 * time.Second
	MaxImageBytes        = 16 << 20
)

// HTTPDecoder loads images from http(s) URLs or local file paths and decodes
// jpeg, png, gif and webp
type HTTPDecoder struct {
	httpClient *http.Client
	userAgent  string
}

// NewHTTPDecoder creates a decoder; a zero timeout uses DefaultDecodeTimeout
func NewHTTPDecoder(timeout time.Duration, userAgent string) *HTTPDecoder {
	if timeout == 0 {
		timeout = DefaultDecodeTimeout
	}
	return &HTTPDecoder{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// Decode fetches and decodes source
func (d *HTTPDecoder) Decode(ctx context.Context, source string) (image.Image, error) {
	if source == "" {
		return nil, fmt.Errorf("empty image source")
	}

	var body io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		rc, err := d.fetch(ctx, source)
		if err != nil {
			return nil, err
		}
		body = rc
	} else {
		f, err := os.Open(strings.TrimPrefix(source, "file://"))
		if err != nil {
			return nil, fmt.Errorf("open image: %w", err)
		}
		body = f
	}
	defer body.Close()

	img, _, err := image.Decode(io.LimitReader(body, MaxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", source, err)
	}
	return img, nil
}

func (d *HTTPDecoder) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch image: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}
