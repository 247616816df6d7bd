// Package crawl implements the link-check engine: a concurrent,
// deduplicated, depth-unbounded traversal of a link graph discovered
// incrementally from fetched HTML.
package crawl

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/awalczyk/linkrot"
)

// Options configure a single crawl run.
type Options struct {
	// Recurse enables expansion of in-scope links discovered on pages.
	// The root page is always expanded; Recurse gates its descendants.
	Recurse bool

	// Concurrency caps in-flight fetches. Defaults to
	// linkrot.DefaultConcurrency.
	Concurrency int

	// SkipPatterns are user regexes checked in addition to the built-in
	// mailto:/irc:/data: skips.
	SkipPatterns []string

	// Seeds are extra URLs probed in addition to the root (e.g. sitemap
	// entries). They are scope-classified like discovered links.
	Seeds []string
}

// Crawler walks a link graph and records one result per distinct URL.
type Crawler struct {
	Fetcher   linkrot.Fetcher
	Extractor linkrot.LinkExtractor

	// Events receives fire-and-forget notifications. Optional.
	Events linkrot.EventFunc

	// Logger for per-fetch debug output. Optional.
	Logger *slog.Logger
}

// taskResult carries a finalized result plus any links discovered on the
// page back to the coordinator.
type taskResult struct {
	result     linkrot.LinkResult
	discovered []linkrot.ParsedLink
}

// Crawl checks rootURL and everything reachable from it under the given
// options. The returned report lists every visited or attempted URL in
// completion order. Individual fetch failures never fail the run; the only
// errors are an unparseable root, an invalid skip pattern, or context
// cancellation.
func (c *Crawler) Crawl(ctx context.Context, rootURL string, opts Options) (*linkrot.Report, error) {
	root, err := url.Parse(rootURL)
	if err != nil {
		return nil, linkrot.Errorf(linkrot.EINVALID, "invalid root URL %q: %v", rootURL, err)
	}

	skips, err := NewSkipList(opts.SkipPatterns)
	if err != nil {
		return nil, err
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = linkrot.DefaultConcurrency
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	frontier := NewFrontier()

	// The root is always fetched and expanded, even when it would fail
	// the scope check; scope applies only to discovered children.
	frontier.Push(Task{URL: rootURL, Recurse: true})
	for _, seed := range opts.Seeds {
		seedURL, err := url.Parse(seed)
		if err != nil {
			continue
		}
		frontier.Push(Task{URL: seed, Recurse: ShouldRecurse(seedURL, root, opts.Recurse)})
	}

	workCh := make(chan Task)
	resultCh := make(chan taskResult)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			for task := range workCh {
				res := c.process(gctx, task, skips, logger)
				select {
				case resultCh <- res:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	// Coordinator: single owner of the results slice and the pending
	// count. The run ends when the frontier is drained and no worker is
	// mid-task.
	report := &linkrot.Report{}
	pending := 0
	var next *Task

	for {
		if next == nil {
			if t, ok := frontier.Pop(); ok {
				next = &t
			}
		}
		if next == nil && pending == 0 {
			break
		}
		if ctx.Err() != nil {
			break
		}

		if next != nil {
			select {
			case workCh <- *next:
				pending++
				next = nil
			case res := <-resultCh:
				pending--
				c.handleResult(report, res, frontier, root, opts.Recurse)
			case <-ctx.Done():
			}
		} else {
			select {
			case res := <-resultCh:
				pending--
				c.handleResult(report, res, frontier, root, opts.Recurse)
			case <-ctx.Done():
			}
		}
	}

	close(workCh)
	if err := g.Wait(); err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// handleResult appends a finalized result, notifies observers, and feeds
// newly discovered links back into the frontier.
func (c *Crawler) handleResult(report *linkrot.Report, res taskResult, frontier *Frontier, root *url.URL, recurse bool) {
	report.Results = append(report.Results, res.result)
	if c.Events != nil {
		c.Events(linkrot.Event{
			Type:   linkrot.EventLink,
			Result: &report.Results[len(report.Results)-1],
		})
	}

	for _, link := range res.discovered {
		if link.Err != nil || link.URL == nil {
			// Malformed links are excluded from the crawl candidate
			// set; they never produce a result of their own.
			continue
		}
		frontier.Push(Task{
			URL:     link.URL.String(),
			Parent:  res.result.URL,
			Recurse: ShouldRecurse(link.URL, root, recurse),
		})
	}
}

// process runs one task through the skip gate, the fetch, the status
// classification, and (when eligible) link extraction.
func (c *Crawler) process(ctx context.Context, task Task, skips *SkipList, logger *slog.Logger) taskResult {
	res := taskResult{result: linkrot.LinkResult{
		URL:    task.URL,
		Parent: task.Parent,
	}}

	if skips.Match(task.URL) {
		res.result.State = linkrot.StateSkipped
		return res
	}

	// A GET is needed when the body may be parsed for links; otherwise a
	// HEAD probe suffices.
	method := http.MethodHead
	if task.Recurse {
		method = http.MethodGet
	}

	resp, err := c.Fetcher.Fetch(ctx, method, task.URL)
	if err == nil && method == http.MethodHead && resp.StatusCode == http.StatusMethodNotAllowed {
		// One-shot fallback for servers that reject HEAD.
		resp, err = c.Fetcher.Fetch(ctx, http.MethodGet, task.URL)
	}
	if err != nil {
		logger.Debug("fetch failed", "url", task.URL, "err", err)
		res.result.Status = 0
		res.result.State = linkrot.StateBroken
		return res
	}

	res.result.Status = resp.StatusCode
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		res.result.State = linkrot.StateOK
	} else {
		res.result.State = linkrot.StateBroken
	}

	if task.Recurse && isHTML(resp.ContentType) {
		if c.Events != nil {
			c.Events(linkrot.Event{Type: linkrot.EventPageStart, URL: task.URL})
		}
		links, err := c.Extractor.ExtractLinks(string(resp.Body), task.URL)
		if err != nil {
			logger.Debug("extract failed", "url", task.URL, "err", err)
		} else {
			res.discovered = links
		}
	}

	return res
}

// isHTML reports whether a Content-Type header denotes a parseable HTML
// document.
func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
