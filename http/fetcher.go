// Package http provides the HTTP transport, the local static file server,
// and sitemap seeding for the link checker.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/awalczyk/linkrot"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements linkrot.Fetcher at compile time.
var _ linkrot.Fetcher = (*Fetcher)(nil)

// Fetcher issues GET and HEAD requests for the crawl engine. HTTP status
// codes of any value are returned as data; only transport failures become
// errors.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: "linkrot/" + linkrot.Version,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a single request. Redirects are followed; the final
// response's status, content type and (for non-HEAD requests) body are
// returned.
func (f *Fetcher) Fetch(ctx context.Context, method, url string) (*linkrot.FetchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	fr := &linkrot.FetchResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}

	if method != http.MethodHead {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		fr.Body = body
	}

	return fr, nil
}

// Close releases idle transport connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
