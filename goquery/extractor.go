// Package goquery provides a goquery-based implementation of
// linkrot.LinkExtractor.
package goquery

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/awalczyk/linkrot"
)

// Compile-time interface verification.
var _ linkrot.LinkExtractor = (*Extractor)(nil)

// attrRule maps one attribute name to the element tags that carry a
// fetchable URL in that attribute. The tag "*" matches every element.
type attrRule struct {
	attr string
	tags []string
}

// linkAttrs lists every attribute scanned for link targets, in the order
// the extractor visits them.
var linkAttrs = []attrRule{
	{attr: "background", tags: []string{"body"}},
	{attr: "cite", tags: []string{"blockquote", "del", "ins", "q"}},
	{attr: "data", tags: []string{"object"}},
	{attr: "href", tags: []string{"a", "area", "link"}},
	{attr: "poster", tags: []string{"video"}},
	{attr: "src", tags: []string{"audio", "embed", "frame", "iframe", "img", "input", "script", "source", "track", "video"}},
	{attr: "srcset", tags: []string{"img", "source"}},
	{attr: "style", tags: []string{"*"}},
}

var (
	// A URI scheme prefix per RFC 3986.
	schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

	// Windows drive paths look like schemes ("C:\...") but are not.
	windowsPathRe = regexp.MustCompile(`^[a-zA-Z]:\\`)

	// url(...) values inside style declarations, optionally quoted.
	cssURLRe = regexp.MustCompile(`url\(\s*['"]?([^'")]+?)['"]?\s*\)`)
)

// Extractor extracts normalized absolute link targets from HTML documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks parses the document and returns one ParsedLink per raw link
// token found in the attributes listed in linkAttrs, resolved against the
// document's effective base URL. Token-level resolution failures are
// captured on the ParsedLink; only an unparseable document is an error.
func (e *Extractor) ExtractLinks(html string, baseURL string) ([]linkrot.ParsedLink, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, linkrot.Errorf(linkrot.EINVALID, "parse HTML: %v", err)
	}

	base := effectiveBase(doc, baseURL)

	var links []linkrot.ParsedLink
	for _, rule := range linkAttrs {
		doc.Find(rule.selector()).Each(func(_ int, sel *goquery.Selection) {
			value, ok := sel.Attr(rule.attr)
			if !ok {
				return
			}
			for _, token := range attrTokens(rule.attr, value) {
				links = append(links, resolveLink(token, base))
			}
		})
	}

	return links, nil
}

// selector builds the CSS selector matching every element/attribute pair of
// the rule.
func (r attrRule) selector() string {
	parts := make([]string, 0, len(r.tags))
	for _, tag := range r.tags {
		if tag == "*" {
			parts = append(parts, fmt.Sprintf("[%s]", r.attr))
		} else {
			parts = append(parts, fmt.Sprintf("%s[%s]", tag, r.attr))
		}
	}
	return strings.Join(parts, ", ")
}

// attrTokens splits an attribute value into raw link tokens. Most
// attributes carry a single URL verbatim; srcset and style need their own
// micro-grammars.
func attrTokens(attr, value string) []string {
	switch attr {
	case "srcset":
		return srcsetTokens(value)
	case "style":
		return styleTokens(value)
	default:
		token := strings.TrimSpace(value)
		if token == "" {
			return nil
		}
		return []string{token}
	}
}

// srcsetTokens returns the URL of each image candidate, discarding the
// width/density descriptors.
func srcsetTokens(value string) []string {
	var tokens []string
	for _, candidate := range strings.Split(value, ",") {
		fields := strings.Fields(candidate)
		if len(fields) > 0 {
			tokens = append(tokens, fields[0])
		}
	}
	return tokens
}

// styleTokens returns the url(...) targets of background and
// background-image declarations. Every other declaration yields nothing.
func styleTokens(value string) []string {
	var tokens []string
	for _, decl := range strings.Split(value, ";") {
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(parts[0]))
		if prop != "background" && prop != "background-image" {
			continue
		}
		for _, m := range cssURLRe.FindAllStringSubmatch(parts[1], -1) {
			if m[1] != "" {
				tokens = append(tokens, m[1])
			}
		}
	}
	return tokens
}

// effectiveBase computes the base URL used to resolve relative tokens. Per
// the HTML specification only the first <base href> counts; a relative
// <base href> is itself resolved against the page URL.
func effectiveBase(doc *goquery.Document, pageURL string) *url.URL {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	href, ok := doc.Find("base[href]").First().Attr("href")
	if !ok {
		return base
	}
	href = strings.TrimSpace(href)
	if href == "" {
		return base
	}

	if isAbsoluteURL(href) {
		if u, err := url.Parse(href); err == nil {
			return u
		}
		return base
	}
	if base == nil {
		return nil
	}
	ref, err := url.Parse(href)
	if err != nil {
		return base
	}
	return base.ResolveReference(ref)
}

// resolveLink resolves one raw token into an absolute URL, stripping any
// fragment since fragments do not denote distinct fetchable resources.
func resolveLink(raw string, base *url.URL) linkrot.ParsedLink {
	link := linkrot.ParsedLink{Raw: raw}

	var ref *url.URL
	if windowsPathRe.MatchString(raw) {
		// A drive path would otherwise parse as a URL with scheme "c".
		ref = &url.URL{Path: raw}
	} else {
		var err error
		ref, err = url.Parse(raw)
		if err != nil {
			link.Err = linkrot.Errorf(linkrot.EINVALID, "parse link %q: %v", raw, err)
			return link
		}
	}

	var resolved *url.URL
	if isAbsoluteURL(raw) {
		resolved = ref
	} else {
		if base == nil {
			link.Err = linkrot.Errorf(linkrot.EINVALID, "relative link %q with no usable base URL", raw)
			return link
		}
		resolved = base.ResolveReference(ref)
	}

	resolved.Fragment = ""
	link.URL = resolved
	return link
}

// isAbsoluteURL reports whether a token already carries a URI scheme.
// Windows drive paths ("C:\...") are explicitly not schemes.
func isAbsoluteURL(s string) bool {
	if windowsPathRe.MatchString(s) {
		return false
	}
	return schemeRe.MatchString(s)
}
