package crawl

import (
	"context"
	"net/url"

	"github.com/awalczyk/linkrot"
)

// Checker is the top-level entry point: it rewrites a local path into a
// served URL, gathers optional sitemap seeds, and runs the crawler.
type Checker struct {
	Crawler *Crawler

	// Server exposes local directories over HTTP. Required only when the
	// check target is a filesystem path.
	Server linkrot.StaticServer

	// Sitemaps supplies extra seeds when the Sitemap option is set.
	// Optional.
	Sitemaps linkrot.SitemapSeeder
}

// Check runs a full link check for the given options.
//
// Broken links are data, not errors: the report is returned with
// Passed() == false when any link is broken. Errors are reserved for
// failures to start the run at all (invalid options, a static server that
// cannot bind).
func (ch *Checker) Check(ctx context.Context, opts linkrot.CheckOptions) (*linkrot.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.WithDefaults()

	rootURL := opts.Path
	if !isHTTPURL(rootURL) {
		if ch.Server == nil {
			return nil, linkrot.Errorf(linkrot.EINVALID, "local path %q requires a static server", opts.Path)
		}
		base, err := ch.Server.Start(opts.Path, opts.Port)
		if err != nil {
			return nil, linkrot.Errorf(linkrot.EUNAVAILABLE, "serve %s: %v", opts.Path, err)
		}
		defer func() { _ = ch.Server.Stop() }()
		rootURL = base
	}

	var seeds []string
	if opts.Sitemap && ch.Sitemaps != nil {
		// A missing or malformed sitemap never fails the run; the root
		// crawl proceeds without extra seeds.
		if s, err := ch.Sitemaps.Seed(ctx, rootURL); err == nil {
			seeds = s
		}
	}

	return ch.Crawler.Crawl(ctx, rootURL, Options{
		Recurse:      opts.Recurse,
		Concurrency:  opts.Concurrency,
		SkipPatterns: opts.LinksToSkip,
		Seeds:        seeds,
	})
}

// isHTTPURL reports whether the check target is already a crawlable URL,
// as opposed to a local filesystem path.
func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}
