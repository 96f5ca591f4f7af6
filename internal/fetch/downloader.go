package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Downloader retrieves the full body behind a URL.
type Downloader interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPDownloader fetches files with a plain GET.
type HTTPDownloader struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures an HTTPDownloader.
type Option func(*HTTPDownloader)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(d *HTTPDownloader) {
		d.httpClient = c
	}
}

// WithTimeout sets an overall per-request timeout. Zero keeps the client's.
func WithTimeout(timeout time.Duration) Option {
	return func(d *HTTPDownloader) {
		if timeout <= 0 {
			return
		}
		c := *d.httpClient
		c.Timeout = timeout
		d.httpClient = &c
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(d *HTTPDownloader) {
		d.userAgent = ua
	}
}

// NewHTTPDownloader creates a downloader using http.DefaultClient unless
// overridden.
func NewHTTPDownloader(opts ...Option) *HTTPDownloader {
	d := &HTTPDownloader{
		httpClient: http.DefaultClient,
		userAgent:  "unitykit",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Fetch performs a GET and returns the body. Any non-2xx status is an error.
func (d *HTTPDownloader) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("response status code does not indicate success: %d (%s)",
			resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
