package mock

import "github.com/awalczyk/linkrot"

var _ linkrot.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of linkrot.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]linkrot.ParsedLink, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]linkrot.ParsedLink, error) {
	return e.ExtractLinksFn(html, baseURL)
}
