package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"

	"github.com/awalczyk/linkrot"
)

// Ensure SitemapSeeder implements linkrot.SitemapSeeder at compile time.
var _ linkrot.SitemapSeeder = (*SitemapSeeder)(nil)

// maxSitemapDepth bounds sitemapindex recursion so a cyclic or hostile
// index cannot loop the seeder.
const maxSitemapDepth = 5

// SitemapSeeder discovers crawl seeds from <origin>/sitemap.xml.
// Sitemap indexes are resolved recursively; URLs are deduplicated across
// nested sitemaps.
type SitemapSeeder struct {
	client *http.Client
}

// NewSitemapSeeder creates a new SitemapSeeder with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapSeeder(client *http.Client) *SitemapSeeder {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapSeeder{client: client}
}

// Seed returns the URLs listed in the sitemap of rootURL's origin.
// A missing sitemap yields an empty slice, not an error.
func (s *SitemapSeeder) Seed(ctx context.Context, rootURL string) ([]string, error) {
	base, err := url.Parse(rootURL)
	if err != nil {
		return nil, linkrot.Errorf(linkrot.EINVALID, "invalid root URL %q: %v", rootURL, err)
	}

	origin := &url.URL{Scheme: base.Scheme, Host: base.Host}
	sitemapURL := origin.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	var urls []string

	err = s.walk(ctx, sitemapURL, 0, seenSitemaps, seenURLs, &urls)
	if err != nil {
		return nil, err
	}
	return urls, nil
}

// walk fetches one sitemap document and collects its URLs, recursing into
// sitemapindex entries.
func (s *SitemapSeeder) walk(ctx context.Context, sitemapURL string, depth int, seenSitemaps, seenURLs map[string]bool, urls *[]string) error {
	if depth > maxSitemapDepth || seenSitemaps[sitemapURL] {
		return nil
	}
	seenSitemaps[sitemapURL] = true

	body, ok, err := s.fetch(ctx, sitemapURL)
	if err != nil {
		return err
	}
	if !ok {
		// Absent sitemaps are not an error.
		return nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return linkrot.Errorf(linkrot.EINVALID, "parse sitemap %s: %v", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil
	}

	switch root.Tag {
	case "urlset":
		for _, el := range root.SelectElements("url") {
			loc := el.SelectElement("loc")
			if loc == nil {
				continue
			}
			u := trimText(loc)
			if u != "" && !seenURLs[u] {
				seenURLs[u] = true
				*urls = append(*urls, u)
			}
		}
	case "sitemapindex":
		for _, el := range root.SelectElements("sitemap") {
			loc := el.SelectElement("loc")
			if loc == nil {
				continue
			}
			if u := trimText(loc); u != "" {
				if err := s.walk(ctx, u, depth+1, seenSitemaps, seenURLs, urls); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// fetch retrieves a sitemap document. The second return value is false when
// the document does not exist or is not retrievable over this origin.
func (s *SitemapSeeder) fetch(ctx context.Context, rawURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("read sitemap %s: %w", rawURL, err)
	}
	return body, true, nil
}

// trimText returns an element's text with the whitespace that
// pretty-printed XML leaves around <loc> values removed.
func trimText(el *etree.Element) string {
	return strings.TrimSpace(el.Text())
}
