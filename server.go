package linkrot

// StaticServer exposes a local directory over plain HTTP so the crawl
// engine can treat local and remote targets uniformly. Implementations must
// serve files with correct content types so HTML pages are recognized for
// link extraction.
type StaticServer interface {
	// Start serves dir on localhost at the given port (0 picks an
	// ephemeral port) and returns the base URL to crawl.
	Start(dir string, port int) (baseURL string, err error)

	// Stop shuts the server down synchronously.
	Stop() error
}
