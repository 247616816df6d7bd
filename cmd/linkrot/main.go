// Command linkrot checks a website or a local directory tree for broken
// links.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/awalczyk/linkrot"
	"github.com/awalczyk/linkrot/crawl"
	lrgoquery "github.com/awalczyk/linkrot/goquery"
	lrhttp "github.com/awalczyk/linkrot/http"
	lrslog "github.com/awalczyk/linkrot/slog"
	lryaml "github.com/awalczyk/linkrot/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Path        string           `arg:"" required:"" help:"URL or local directory to check"`
	Recurse     bool             `short:"r" help:"Expand same-origin links found on fetched pages"`
	Concurrency int              `short:"c" help:"Concurrent fetch limit (default 100)"`
	Port        int              `short:"p" help:"Port for serving a local directory (default: ephemeral)"`
	Skip        []string         `short:"s" help:"Regex for links to mark skipped without fetching (repeatable)"`
	Sitemap     bool             `help:"Also probe every URL listed in the site's sitemap.xml"`
	Timeout     time.Duration    `short:"t" help:"Fetch timeout per link (default 10s)"`
	Config      string           `help:"Path to a YAML config file" type:"path"`
	Format      string           `default:"text" enum:"text,json" help:"Report format (text or json)"`
	Verbose     bool             `short:"v" help:"Log fetches to stderr"`
	Version     kong.VersionFlag `help:"Print version and exit"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkrot"),
		kong.Description("Check a website or local directory for broken links"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"version": "linkrot " + linkrot.Version},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	opts, err := m.buildOptions(cli)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var fetcher linkrot.Fetcher = lrhttp.NewFetcher(
		lrhttp.WithTimeout(opts.Timeout),
		lrhttp.WithUserAgent(opts.UserAgent),
	)
	defer fetcher.Close()

	var extractor linkrot.LinkExtractor = lrgoquery.NewExtractor()

	if cli.Verbose {
		fetcher = lrslog.NewLoggingFetcher(fetcher, logger)
		extractor = lrslog.NewLoggingExtractor(extractor, logger)
	}

	var events linkrot.EventFunc
	if cli.Format == "text" {
		events = func(ev linkrot.Event) {
			if ev.Type == linkrot.EventLink {
				renderResult(stdout, *ev.Result)
			}
		}
	}

	checker := &crawl.Checker{
		Crawler: &crawl.Crawler{
			Fetcher:   fetcher,
			Extractor: extractor,
			Events:    events,
			Logger:    logger,
		},
		Server:   lrhttp.NewStaticServer(),
		Sitemaps: lrhttp.NewSitemapSeeder(nil),
	}

	report, err := checker.Check(ctx, opts)
	if err != nil {
		return err
	}

	switch cli.Format {
	case "json":
		if err := renderJSON(stdout, report); err != nil {
			return err
		}
	default:
		renderSummary(stdout, report)
	}

	if !report.Passed() {
		return fmt.Errorf("found %d broken links", report.Count(linkrot.StateBroken))
	}
	return nil
}

// buildOptions merges the config file (when given) with the CLI flags.
// Flags win where set; boolean flags can only enable.
func (m *Main) buildOptions(cli *CLI) (linkrot.CheckOptions, error) {
	opts := linkrot.CheckOptions{}
	if cli.Config != "" {
		loaded, err := lryaml.LoadOptions(cli.Config)
		if err != nil {
			return opts, err
		}
		opts = *loaded
	}

	opts.Path = cli.Path
	if cli.Concurrency != 0 {
		opts.Concurrency = cli.Concurrency
	}
	if cli.Port != 0 {
		opts.Port = cli.Port
	}
	if cli.Timeout != 0 {
		opts.Timeout = cli.Timeout
	}
	if cli.Recurse {
		opts.Recurse = true
	}
	if cli.Sitemap {
		opts.Sitemap = true
	}
	opts.LinksToSkip = append(opts.LinksToSkip, cli.Skip...)

	opts = opts.WithDefaults()
	return opts, opts.Validate()
}
