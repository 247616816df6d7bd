package linkrot

import "net/url"

// ParsedLink is a raw link token found in markup together with its
// resolution outcome against the page's effective base URL.
type ParsedLink struct {
	// Raw is the attribute-value token as it appeared in the document.
	Raw string

	// URL is the resolved absolute URL with any fragment stripped.
	// Nil when resolution failed.
	URL *url.URL

	// Err records a resolution failure. Links that fail to parse are
	// dropped from the crawl candidate set by the caller; they never
	// produce a result of their own.
	Err error
}

// LinkExtractor turns an HTML document into the set of link targets it
// references.
type LinkExtractor interface {
	// ExtractLinks parses the document and returns every linkable token,
	// resolved against baseURL (or the document's first <base href>, when
	// present). Per-token resolution failures are captured on the
	// ParsedLink, not returned as an error.
	ExtractLinks(html string, baseURL string) ([]ParsedLink, error)
}
