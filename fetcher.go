package linkrot

import "context"

// FetchResponse is the transport-level outcome of a fetch. HTTP statuses of
// any value are data, not errors; only transport failures (DNS, refused
// connections, timeouts) surface as errors from Fetch.
type FetchResponse struct {
	StatusCode  int
	ContentType string

	// Body is the response body. Empty for HEAD probes.
	Body []byte
}

// Fetcher issues HTTP requests on behalf of the crawl engine.
type Fetcher interface {
	// Fetch performs a single request with the given method (GET or HEAD).
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, method, url string) (*FetchResponse, error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
