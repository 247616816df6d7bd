package linkrot

import "time"

// Defaults applied by CheckOptions.WithDefaults.
const (
	DefaultConcurrency = 100
	DefaultTimeout     = 10 * time.Second
)

// CheckOptions configure a single link-check run. Read-only for the
// duration of a crawl.
type CheckOptions struct {
	// Path is the crawl root: an http(s) URL, or a local directory that
	// will be served over HTTP before crawling.
	Path string

	// Concurrency caps the number of in-flight fetches.
	Concurrency int

	// Port for the local static server. 0 picks an ephemeral port.
	// Ignored when Path is a URL.
	Port int

	// Recurse enables expansion of same-origin links discovered on
	// fetched pages. Off-origin links are always probed, never expanded.
	Recurse bool

	// Sitemap additionally seeds the crawl with every URL listed in the
	// site's /sitemap.xml, so published-but-unlinked pages get probed.
	Sitemap bool

	// LinksToSkip holds regular expressions; any match marks a link
	// SKIPPED without fetching it. mailto:, irc: and data: schemes are
	// always skipped in addition to these.
	LinksToSkip []string

	// Timeout per fetch.
	Timeout time.Duration

	// UserAgent sent with every request. Defaults to "linkrot/<version>".
	UserAgent string
}

// Validate returns an error if the options cannot start a run.
func (o *CheckOptions) Validate() error {
	if o.Path == "" {
		return Errorf(EINVALID, "path required")
	}
	if o.Concurrency < 0 {
		return Errorf(EINVALID, "concurrency must not be negative")
	}
	if o.Port < 0 || o.Port > 65535 {
		return Errorf(EINVALID, "port %d out of range", o.Port)
	}
	return nil
}

// WithDefaults returns a copy of the options with zero values replaced by
// defaults.
func (o CheckOptions) WithDefaults() CheckOptions {
	if o.Concurrency == 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = "linkrot/" + Version
	}
	return o
}
