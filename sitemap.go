package linkrot

import "context"

// SitemapSeeder discovers additional crawl seeds from a site's sitemap.
type SitemapSeeder interface {
	// Seed returns the URLs listed in <origin>/sitemap.xml, resolving
	// sitemap indexes recursively. A missing sitemap is not an error;
	// it yields an empty slice.
	Seed(ctx context.Context, rootURL string) ([]string, error)
}
