package mock

import (
	"context"

	"github.com/awalczyk/linkrot"
)

var _ linkrot.SitemapSeeder = (*SitemapSeeder)(nil)

// SitemapSeeder is a mock implementation of linkrot.SitemapSeeder.
type SitemapSeeder struct {
	SeedFn func(ctx context.Context, rootURL string) ([]string, error)
}

func (s *SitemapSeeder) Seed(ctx context.Context, rootURL string) ([]string, error) {
	return s.SeedFn(ctx, rootURL)
}
