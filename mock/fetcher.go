package mock

import (
	"context"

	"github.com/awalczyk/linkrot"
)

var _ linkrot.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of linkrot.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, method, url string) (*linkrot.FetchResponse, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, method, url string) (*linkrot.FetchResponse, error) {
	return f.FetchFn(ctx, method, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
